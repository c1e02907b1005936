package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateQuoteRef generates a short reference for one computed quote.
// The ref is echoed in the response and in booking metadata so calendar
// bookings can be matched back to the quote that produced them; nothing
// is stored server-side.
func GenerateQuoteRef() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return QuoteRefPrefix + strings.ToUpper(id[:QuoteRefLength])
}
