package services

import (
	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"
)

// MinimumOrderTotal is the floor every non-empty order is topped up to.
const MinimumOrderTotal = 249.00

// Modifier question keys reported to the widget when a relevant question
// is still unanswered.
const (
	QuestionTwoStory     = "twoStory"
	QuestionGutterGuards = "gutterGuards"
)

// QuoteService composes pricing, duration, discount and promo into totals
type QuoteService struct {
	catalog  *CatalogService
	pricing  *PricingService
	duration *DurationService
	discount *DiscountService
	promo    *PromoService
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	catalog *CatalogService,
	pricing *PricingService,
	duration *DurationService,
	discount *DiscountService,
	promo *PromoService,
) *QuoteService {
	return &QuoteService{
		catalog:  catalog,
		pricing:  pricing,
		duration: duration,
		discount: discount,
		promo:    promo,
	}
}

// ComputeTotals turns one widget state into a fresh Totals record. The
// computation is pure: identical inputs always produce identical outputs,
// and every money step rounds to cents before the next one (the house
// half-price rule inside pricing being the lone whole-dollar exception).
func (s *QuoteService) ComputeTotals(sel models.Selection, mods models.Modifiers, promoCode string, houseHalfPrice bool) (models.Totals, *models.PromoStatus) {
	selected := s.catalog.SelectedServices(sel)

	// Subtotal sums every selected service's adjusted price. Selecting
	// both pressure-wash variants sums both prices even though they share
	// a discount category.
	var subtotal float64
	for _, svc := range selected {
		subtotal += s.pricing.AdjustedPrice(svc, mods, houseHalfPrice)
	}
	subtotal = utils.Round(subtotal)

	effectiveCount := s.discount.EffectiveCount(sel)
	discountRate := s.discount.Rate(effectiveCount)
	discountAmount := s.discount.Amount(subtotal, effectiveCount)
	afterBundle := utils.Round(subtotal - discountAmount)

	promoStatus := s.promo.Apply(promoCode, sel, afterBundle)
	var promoCodeApplied string
	var promoAmount float64
	if promoStatus != nil && promoStatus.Applied {
		promoCodeApplied = promoStatus.Code
		promoAmount = promoStatus.Amount
	}
	afterPromo := utils.Round(afterBundle - promoAmount)

	minimumFee := s.MinimumFee(afterPromo)
	total := utils.Round(afterPromo + minimumFee)
	if total < 0 {
		total = 0
	}

	totals := models.Totals{
		SelectedCount:   len(selected),
		EffectiveCount:  effectiveCount,
		Subtotal:        subtotal,
		DiscountRate:    discountRate,
		DiscountAmount:  discountAmount,
		PromoCode:       promoCodeApplied,
		PromoAmount:     promoAmount,
		MinimumFee:      minimumFee,
		Total:           total,
		DurationMinutes: s.duration.TotalMinutes(sel, mods),
	}
	return totals, promoStatus
}

// MinimumFee tops a non-zero post-promo amount up to the minimum order
// total. An empty order stays at zero rather than being charged a fee for
// selecting nothing.
func (s *QuoteService) MinimumFee(afterPromo float64) float64 {
	if afterPromo > 0 && afterPromo < MinimumOrderTotal {
		return utils.Round(MinimumOrderTotal - afterPromo)
	}
	return 0
}

// Lines returns the selected services with adjusted prices and time
// estimates, in catalog order.
func (s *QuoteService) Lines(sel models.Selection, mods models.Modifiers, houseHalfPrice bool) []models.QuoteLine {
	var lines []models.QuoteLine
	for _, svc := range s.catalog.SelectedServices(sel) {
		lines = append(lines, models.QuoteLine{
			ID:              svc.ID,
			Name:            svc.Name,
			Price:           s.pricing.AdjustedPrice(svc, mods, houseHalfPrice),
			DurationMinutes: s.duration.ServiceMinutes(svc.ID, mods),
		})
	}
	return lines
}

// MissingAnswers lists the property questions that are relevant to the
// selection but still unanswered. Pricing proceeds on the "no" default
// either way; the widget uses this list to hold back the booking button.
func (s *QuoteService) MissingAnswers(sel models.Selection, mods models.Modifiers) []string {
	var missing []string
	if s.catalog.TwoStoryRelevant(sel) && !mods.TwoStory.Answered() {
		missing = append(missing, QuestionTwoStory)
	}
	if s.catalog.GuardsRelevant(sel) && !mods.GutterGuards.Answered() {
		missing = append(missing, QuestionGutterGuards)
	}
	return missing
}

// Schedulable reports whether the quote can proceed to booking: something
// must be selected and every relevant question answered. This is a
// presentation gate, not a computation failure.
func (s *QuoteService) Schedulable(sel models.Selection, mods models.Modifiers) bool {
	if len(s.catalog.SelectedServices(sel)) == 0 {
		return false
	}
	return len(s.MissingAnswers(sel, mods)) == 0
}

// UpsellOffer returns the discounted house-wash offer shown before booking
// when house washing is not already in the quote. The offer price uses the
// same whole-dollar half-price rule the engine applies once accepted, so
// the number the customer sees is the number they pay.
func (s *QuoteService) UpsellOffer(sel models.Selection, mods models.Modifiers) *models.UpsellOffer {
	if sel.IsSelected(ServiceHouse) {
		return nil
	}
	house, ok := s.catalog.ByID(ServiceHouse)
	if !ok {
		return nil
	}
	return &models.UpsellOffer{
		ServiceID:    house.ID,
		Name:         house.Name,
		RegularPrice: s.pricing.AdjustedPrice(house, mods, false),
		OfferPrice:   s.pricing.AdjustedPrice(house, mods, true),
	}
}
