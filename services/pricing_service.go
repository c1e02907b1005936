package services

import (
	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"
)

// Price adjustment rules
const (
	// TwoStoryAdder is the flat upcharge for house and window work on a
	// two-story home.
	TwoStoryAdder = 100.00
	// GutterGuardSurcharge covers removing and reseating guards.
	GutterGuardSurcharge = 749.00
	// HouseHalfPriceFactor is the upsell discount on house washing.
	HouseHalfPriceFactor = 0.5
)

// PricingService applies the modifier-driven price rules to the catalog
type PricingService struct {
	catalog *CatalogService
}

// NewPricingService creates a new pricing service
func NewPricingService(catalog *CatalogService) *PricingService {
	return &PricingService{catalog: catalog}
}

// AdjustedPrice computes one service's price under the given modifiers.
// Rule order is fixed: two-story adjustments first, then the gutter-guard
// surcharge on top of the doubled gutter price, then the house half-price
// promotion on top of whatever came before. Unanswered questions price
// as "no".
func (s *PricingService) AdjustedPrice(svc models.Service, mods models.Modifiers, houseHalfPrice bool) float64 {
	price := svc.BasePrice

	if mods.TwoStory.Bool() {
		switch svc.ID {
		case ServiceGutter:
			price = svc.BasePrice * 2
		case ServiceHouse, ServiceWindows:
			price += TwoStoryAdder
		}
	}

	if mods.GutterGuards.Bool() && svc.ID == ServiceGutter {
		price += GutterGuardSurcharge
	}

	if houseHalfPrice && svc.ID == ServiceHouse {
		// The half-price promotion rounds to whole dollars. Every other
		// money step in the engine rounds to cents; keep the mismatch.
		price = utils.RoundDollars(price * HouseHalfPriceFactor)
	}

	return utils.Round(price)
}

// PricedCatalog returns the whole catalog with adjusted prices, preserving
// ids and order.
func (s *PricingService) PricedCatalog(mods models.Modifiers, houseHalfPrice bool) []models.PricedService {
	services := s.catalog.Services()
	priced := make([]models.PricedService, len(services))
	for i, svc := range services {
		priced[i] = models.PricedService{
			Service: svc,
			Price:   s.AdjustedPrice(svc, mods, houseHalfPrice),
		}
	}
	return priced
}
