// models/models.go
package models

// Service represents a catalog entry for a single exterior-cleaning service.
// Catalog entries are created at process start and never mutated.
type Service struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
	Desc      string  `json:"desc"`
}

// PricedService is a Service with its modifier-adjusted price populated.
// It lives for the duration of a single quote computation.
type PricedService struct {
	Service
	Price float64 `json:"price"`
}

// Selection maps a service id to whether the customer selected it.
// The zero value (nil map) means nothing is selected.
type Selection map[string]bool

// IsSelected reports whether the given service id is selected.
func (s Selection) IsSelected(id string) bool {
	return s[id]
}

// Count returns the number of selected services.
func (s Selection) Count() int {
	count := 0
	for _, selected := range s {
		if selected {
			count++
		}
	}
	return count
}

// Modifiers holds the property questions that drive price and duration
// adjustments. Both are tri-state: an unanswered question prices as "no"
// but blocks scheduling while any relevant question remains unanswered.
type Modifiers struct {
	TwoStory     Answer `json:"twoStory"`
	GutterGuards Answer `json:"gutterGuards"`
}

// Totals is the full result of one quote computation. It is recomputed
// from scratch on every input change and never partially updated.
type Totals struct {
	SelectedCount   int     `json:"selectedCount"`
	EffectiveCount  int     `json:"effectiveCount"`
	Subtotal        float64 `json:"subtotal"`
	DiscountRate    float64 `json:"discountRate"`
	DiscountAmount  float64 `json:"discountAmount"`
	PromoCode       string  `json:"promoCode,omitempty"`
	PromoAmount     float64 `json:"promoAmount"`
	MinimumFee      float64 `json:"minimumFee"`
	Total           float64 `json:"total"`
	DurationMinutes int     `json:"durationMinutes"`
}

// PromoStatus reports the outcome of applying a promo code. A rejected
// code carries a human-readable reason and leaves totals untouched.
type PromoStatus struct {
	Code    string  `json:"code"`
	Label   string  `json:"label,omitempty"`
	Applied bool    `json:"applied"`
	Amount  float64 `json:"amount"`
	Reason  string  `json:"reason,omitempty"`
}

// UpsellOffer describes the discounted house-wash add-on shown before
// booking when house washing is not already selected.
type UpsellOffer struct {
	ServiceID    string  `json:"serviceId"`
	Name         string  `json:"name"`
	RegularPrice float64 `json:"regularPrice"`
	OfferPrice   float64 `json:"offerPrice"`
}

// CampaignTrigger describes the initial widget state demanded by a
// marketing campaign detected from the page's query string.
type CampaignTrigger struct {
	Campaign       string   `json:"campaign"`
	SelectServices []string `json:"selectServices"`
	PromoCode      string   `json:"promoCode"`
}
