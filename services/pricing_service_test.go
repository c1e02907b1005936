package services

import (
	"testing"

	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/stretchr/testify/assert"
)

func TestPricingService_AdjustedPrice_SingleStoryBaseline(t *testing.T) {
	catalog := NewCatalogService()
	service := NewPricingService(catalog)

	// With nothing answered every service prices at its base.
	for _, svc := range catalog.Services() {
		price := service.AdjustedPrice(svc, models.Modifiers{}, false)
		assert.Equal(t, svc.BasePrice, price, "service %s should price at base", svc.ID)
	}
}

func TestPricingService_AdjustedPrice_TwoStory(t *testing.T) {
	catalog := NewCatalogService()
	service := NewPricingService(catalog)

	mods := models.Modifiers{TwoStory: models.AnswerYes, GutterGuards: models.AnswerNo}

	// Gutter doubles, house and windows take a flat +100, nothing else moves.
	expected := map[string]float64{
		ServiceDriveway: 249,
		ServicePatio:    99,
		ServiceWindows:  549, // 449 + 100
		ServiceHouse:    549, // 449 + 100
		ServiceRoof:     649,
		ServiceGutter:   498, // 249 x 2
	}

	for _, svc := range catalog.Services() {
		price := service.AdjustedPrice(svc, mods, false)
		assert.Equal(t, expected[svc.ID], price, "two-story price for %s", svc.ID)
	}
}

func TestPricingService_AdjustedPrice_GutterGuards(t *testing.T) {
	catalog := NewCatalogService()
	service := NewPricingService(catalog)
	gutter, _ := catalog.ByID(ServiceGutter)

	// Single story: 249 + 749 = 998
	singleStory := models.Modifiers{TwoStory: models.AnswerNo, GutterGuards: models.AnswerYes}
	assert.Equal(t, 998.00, service.AdjustedPrice(gutter, singleStory, false))

	// Two story: the doubling happens first, the surcharge lands on top:
	// (249 x 2) + 749 = 1247, not (249 + 749) x 2
	twoStory := models.Modifiers{TwoStory: models.AnswerYes, GutterGuards: models.AnswerYes}
	assert.Equal(t, 1247.00, service.AdjustedPrice(gutter, twoStory, false))

	// The surcharge never touches other services.
	house, _ := catalog.ByID(ServiceHouse)
	assert.Equal(t, 449.00, service.AdjustedPrice(house, singleStory, false))
}

func TestPricingService_AdjustedPrice_HouseHalfPrice(t *testing.T) {
	catalog := NewCatalogService()
	service := NewPricingService(catalog)
	house, _ := catalog.ByID(ServiceHouse)

	// The half-price promotion rounds to whole dollars: 449 x 0.5 = 224.50
	// becomes 225, not 224.50.
	assert.Equal(t, 225.00, service.AdjustedPrice(house, models.Modifiers{}, true))

	// Applied after the two-story adder: (449 + 100) x 0.5 = 274.50 -> 275.
	twoStory := models.Modifiers{TwoStory: models.AnswerYes}
	assert.Equal(t, 275.00, service.AdjustedPrice(house, twoStory, true))

	// The flag only touches house washing.
	roof, _ := catalog.ByID(ServiceRoof)
	assert.Equal(t, 649.00, service.AdjustedPrice(roof, models.Modifiers{}, true))

	// Without the flag, house prices normally.
	assert.Equal(t, 449.00, service.AdjustedPrice(house, models.Modifiers{}, false))
}

func TestPricingService_AdjustedPrice_UnansweredPricesAsNo(t *testing.T) {
	catalog := NewCatalogService()
	service := NewPricingService(catalog)
	gutter, _ := catalog.ByID(ServiceGutter)

	unanswered := models.Modifiers{}
	answeredNo := models.Modifiers{TwoStory: models.AnswerNo, GutterGuards: models.AnswerNo}

	assert.Equal(t,
		service.AdjustedPrice(gutter, answeredNo, false),
		service.AdjustedPrice(gutter, unanswered, false),
		"unanswered questions must price exactly like an explicit no")
}

func TestPricingService_PricedCatalog_PreservesOrder(t *testing.T) {
	catalog := NewCatalogService()
	service := NewPricingService(catalog)

	priced := service.PricedCatalog(models.Modifiers{TwoStory: models.AnswerYes}, false)

	services := catalog.Services()
	assert.Len(t, priced, len(services))
	for i, svc := range services {
		assert.Equal(t, svc.ID, priced[i].ID, "priced catalog must keep catalog order")
	}

	// Spot-check an adjusted entry: windows carries the two-story adder.
	for _, entry := range priced {
		if entry.ID == ServiceWindows {
			assert.Equal(t, 549.00, entry.Price)
		}
	}
}
