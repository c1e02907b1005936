package models

// QuoteRequest is the full widget state submitted on every input change.
// Every field is optional: any combination, however sparse, computes to a
// defined result.
type QuoteRequest struct {
	Selection      Selection `json:"selection"`
	TwoStory       Answer    `json:"twoStory"`
	GutterGuards   Answer    `json:"gutterGuards"`
	PromoCode      string    `json:"promoCode"`
	HouseHalfPrice bool      `json:"houseHalfPrice"`
}

// Mods assembles the tri-state modifiers from the flat request fields.
func (r *QuoteRequest) Mods() Modifiers {
	return Modifiers{TwoStory: r.TwoStory, GutterGuards: r.GutterGuards}
}

// QuoteLine is one selected service with its adjusted price, in catalog order.
type QuoteLine struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// QuoteResponse carries everything the widget needs to render one quote:
// the totals record, the booking deep link, and the presentation hints
// (scheduling gate, upsell offer, promo outcome).
type QuoteResponse struct {
	QuoteRef       string       `json:"quoteRef"`
	Totals         Totals       `json:"totals"`
	Lines          []QuoteLine  `json:"lines"`
	BookingURL     string       `json:"bookingUrl"`
	HourBucket     int          `json:"hourBucket"`
	Schedulable    bool         `json:"schedulable"`
	MissingAnswers []string     `json:"missingAnswers,omitempty"`
	Promo          *PromoStatus `json:"promo,omitempty"`
	Upsell         *UpsellOffer `json:"upsell,omitempty"`
}

// CatalogEntry is a priced catalog row plus the per-service time estimate,
// so the widget can render live prices for the current modifiers.
type CatalogEntry struct {
	PricedService
	EstimatedMinutes int `json:"estimatedMinutes"`
}

// CatalogResponse lists the priced catalog in its fixed display order.
type CatalogResponse struct {
	Services []CatalogEntry `json:"services"`
}

// PromoValidateRequest checks one code against a selection without
// committing to a full quote.
type PromoValidateRequest struct {
	Code           string    `json:"code" binding:"required"`
	Selection      Selection `json:"selection"`
	TwoStory       Answer    `json:"twoStory"`
	GutterGuards   Answer    `json:"gutterGuards"`
	HouseHalfPrice bool      `json:"houseHalfPrice"`
}

// BootstrapResponse is the initial widget state for a page load, including
// any campaign-driven preselection and its resulting quote.
type BootstrapResponse struct {
	Selection Selection        `json:"selection"`
	PromoCode string           `json:"promoCode,omitempty"`
	Campaign  *CampaignTrigger `json:"campaign,omitempty"`
	Quote     *QuoteResponse   `json:"quote,omitempty"`
}
