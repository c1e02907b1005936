package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// CanonicalPromoCode uppercases and trims a promo code for registry lookup
func CanonicalPromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// FormatMoney renders an amount for display, dropping cents when they are
// zero so whole-dollar prices read the way the widget shows them ("$549",
// "$34.90").
func FormatMoney(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)
	formatted = strings.TrimSuffix(formatted, ".00")
	return "$" + formatted
}

// FormatPercent renders a fractional rate as a whole percentage ("5%").
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%d%%", int(Round(rate*100)))
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	// Replace invalid characters with underscore
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")

	// Remove extra spaces and trim
	cleaned = strings.TrimSpace(cleaned)
	cleaned = regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")

	return cleaned
}
