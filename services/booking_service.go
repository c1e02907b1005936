package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"
)

// Hour bucket bounds for the external booking calendar. The calendar has
// no slot type longer than eight hours, so bigger jobs book into that one.
const (
	MinHourBucket = 1
	MaxHourBucket = 8
)

// bucketSlugs are the eight fixed calendar endpoints, one per hour bucket.
var bucketSlugs = map[int]string{
	1: "one-hour-job",
	2: "two-hour-job",
	3: "three-hour-job",
	4: "four-hour-job",
	5: "five-hour-job",
	6: "six-hour-job",
	7: "seven-hour-job",
	8: "eight-hour-job",
}

// BookingService maps a computed quote onto the external booking calendar
type BookingService struct {
	catalog         *CatalogService
	calendarBaseURL string
}

// NewBookingService creates a new booking service
func NewBookingService(catalog *CatalogService, calendarBaseURL string) *BookingService {
	return &BookingService{
		catalog:         catalog,
		calendarBaseURL: strings.TrimRight(calendarBaseURL, "/"),
	}
}

// HourBucket converts total duration to the calendar slot size in whole
// hours, rounding up. A missing or non-positive duration books the
// smallest slot rather than failing.
func (s *BookingService) HourBucket(minutes int) int {
	if minutes <= 0 {
		return MinHourBucket
	}
	hours := utils.CeilHours(minutes)
	if hours > MaxHourBucket {
		return MaxHourBucket
	}
	return hours
}

// EndpointURL returns the calendar endpoint for an hour bucket. Buckets
// outside the known range fall back to the eight-hour endpoint.
func (s *BookingService) EndpointURL(bucket int) string {
	slug, ok := bucketSlugs[bucket]
	if !ok {
		slug = bucketSlugs[MaxHourBucket]
	}
	return s.calendarBaseURL + "/" + slug
}

// BookingURL builds the deep link that opens the booking calendar with the
// quote attached. The endpoint is picked by hour bucket and every metadata
// value rides along as a metadata[<key>]=<value> query parameter, in a
// fixed order so identical quotes produce identical links.
func (s *BookingService) BookingURL(quoteRef string, totals models.Totals, lines []models.QuoteLine, sel models.Selection, mods models.Modifiers, houseHalfPrice bool) string {
	endpoint := s.EndpointURL(s.HourBucket(totals.DurationMinutes))

	meta := [][2]string{
		{"quoteRef", quoteRef},
		{"services", s.servicesLine(lines)},
		{"subtotal", utils.FormatMoney(totals.Subtotal)},
		{"discount", s.discountLine(totals)},
	}
	if totals.PromoCode != "" {
		meta = append(meta, [2]string{"promo", fmt.Sprintf("%s (-%s)", totals.PromoCode, utils.FormatMoney(totals.PromoAmount))})
	}
	if totals.MinimumFee > 0 {
		meta = append(meta, [2]string{"minimumFee", utils.FormatMoney(totals.MinimumFee)})
	}
	meta = append(meta,
		[2]string{"total", utils.FormatMoney(totals.Total)},
		[2]string{"durationMinutes", strconv.Itoa(totals.DurationMinutes)},
		[2]string{"serviceCount", strconv.Itoa(totals.EffectiveCount)},
		[2]string{"twoStory", s.answerDisplay(s.catalog.TwoStoryRelevant(sel), mods.TwoStory)},
		[2]string{"gutterGuards", s.answerDisplay(s.catalog.GuardsRelevant(sel), mods.GutterGuards)},
		[2]string{"houseHalfPrice", yesNo(houseHalfPrice && sel.IsSelected(ServiceHouse))},
	)

	var query strings.Builder
	query.WriteString("overlayCalendar=true")
	for _, kv := range meta {
		query.WriteString("&metadata[")
		query.WriteString(kv[0])
		query.WriteString("]=")
		query.WriteString(url.QueryEscape(kv[1]))
	}

	return endpoint + "?" + query.String()
}

// servicesLine renders the human-readable selection summary, e.g.
// "Window & Screen Cleaning ($549), Gutter Cleaning ($498)".
func (s *BookingService) servicesLine(lines []models.QuoteLine) string {
	if len(lines) == 0 {
		return "None"
	}
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = fmt.Sprintf("%s (%s)", line.Name, utils.FormatMoney(line.Price))
	}
	return strings.Join(parts, ", ")
}

// discountLine renders the bundle discount, e.g. "5% (-$34.90)".
func (s *BookingService) discountLine(totals models.Totals) string {
	if totals.DiscountRate == 0 {
		return "0%"
	}
	return fmt.Sprintf("%s (-%s)", utils.FormatPercent(totals.DiscountRate), utils.FormatMoney(totals.DiscountAmount))
}

// answerDisplay renders a property answer for booking metadata: the answer
// itself when given, "N/A" when the question never applied to this
// selection, "Required" when it applies but was never answered.
func (s *BookingService) answerDisplay(relevant bool, answer models.Answer) string {
	if !relevant {
		return "N/A"
	}
	if !answer.Answered() {
		return "Required"
	}
	return answer.String()
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
