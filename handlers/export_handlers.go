package handlers

import (
	"fmt"
	"net/http"

	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ExportQuote computes the quote and streams it back as an .xlsx download
func ExportQuote(c *gin.Context) {
	var request models.QuoteRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	quote := buildQuoteResponse(&request)

	excelFile, filename, err := handlerServices.ExportService.BuildQuoteWorkbook(quote)
	if err != nil {
		handlerServices.Logger.Error("quote export failed", zap.Error(err))
		utils.HandleError(c, utils.NewInternalError(utils.ErrExportFailed))
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	// Write Excel file to response
	if err := excelFile.Write(c.Writer); err != nil {
		handlerServices.Logger.Error("failed to write workbook", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
