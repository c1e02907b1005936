package services

import (
	"fmt"
	"time"

	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"
	"github.com/xuri/excelize/v2"
)

// ExportService renders a computed quote as a downloadable spreadsheet
type ExportService struct{}

// NewExportService creates a new export service
func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildQuoteWorkbook generates a one-sheet quote workbook from a computed
// quote. The file is built in memory and streamed to the caller; nothing
// is stored server-side.
func (s *ExportService) BuildQuoteWorkbook(quote *models.QuoteResponse) (*excelize.File, string, error) {
	f := excelize.NewFile()

	if err := s.createQuoteSheet(f, quote); err != nil {
		return nil, "", fmt.Errorf("failed to create quote sheet: %v", err)
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Quote_%s.xlsx",
		utils.CleanFileName(quote.QuoteRef),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createQuoteSheet lays out the line items and the totals summary.
func (s *ExportService) createQuoteSheet(f *excelize.File, quote *models.QuoteResponse) error {
	sheetName := "Quote"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	// Set headers
	headers := []string{"Service", "Price", "Est. Minutes"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	// Style headers
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", "C1", headerStyle)

	// Add line items
	row := 2
	for _, line := range quote.Lines {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), line.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), line.Price)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), line.DurationMinutes)
		row++
	}

	// Summary section below the line items
	row++
	totals := quote.Totals

	type summaryRow struct {
		label string
		value interface{}
	}

	summary := []summaryRow{
		{"Quote Ref", quote.QuoteRef},
		{"Subtotal", totals.Subtotal},
		{fmt.Sprintf("Bundle Discount (%s)", utils.FormatPercent(totals.DiscountRate)), -totals.DiscountAmount},
	}
	if totals.PromoCode != "" {
		summary = append(summary, summaryRow{fmt.Sprintf("Promo (%s)", totals.PromoCode), -totals.PromoAmount})
	}
	summary = append(summary,
		summaryRow{"Minimum Order Fee", totals.MinimumFee},
		summaryRow{"Total", totals.Total},
		summaryRow{"Estimated Duration (minutes)", totals.DurationMinutes},
		summaryRow{"Booking Link", quote.BookingURL},
	)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	for _, entry := range summary {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), entry.label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), entry.value)
		if entry.label == "Total" {
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), boldStyle)
		}
		row++
	}

	// Auto-fit columns
	f.SetColWidth(sheetName, "A", "A", 30)
	f.SetColWidth(sheetName, "B", "C", 14)

	return nil
}
