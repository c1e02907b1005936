package services

import (
	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"
)

// DiscountService computes the bundle discount from distinct service categories
type DiscountService struct {
	catalog *CatalogService
}

// NewDiscountService creates a new discount service
func NewDiscountService(catalog *CatalogService) *DiscountService {
	return &DiscountService{catalog: catalog}
}

// EffectiveCount counts distinct discount categories among the selected
// services. Both pressure-wash variants collapse to one category, so the
// effective count can be lower than the selected count.
func (s *DiscountService) EffectiveCount(sel models.Selection) int {
	categories := make(map[string]bool)
	for _, svc := range s.catalog.SelectedServices(sel) {
		categories[s.catalog.Category(svc.ID)] = true
	}
	return len(categories)
}

// Rate returns the bundle discount rate for an effective category count.
// The rate is a step function of the count alone, never of which services
// were chosen or what they cost.
func (s *DiscountService) Rate(effectiveCount int) float64 {
	switch {
	case effectiveCount >= 5:
		return 0.20
	case effectiveCount == 4:
		return 0.15
	case effectiveCount == 3:
		return 0.10
	case effectiveCount == 2:
		return 0.05
	default:
		return 0
	}
}

// Amount computes the discount in dollars, rounded to cents.
func (s *DiscountService) Amount(subtotal float64, effectiveCount int) float64 {
	return utils.Round(subtotal * s.Rate(effectiveCount))
}
