package services

import (
	"github.com/CharlesHoffman-dev/instant-quote/models"
)

// Service ids, fixed by the widget contract.
const (
	ServiceDriveway = "pressure-driveway"
	ServicePatio    = "pressure-patio"
	ServiceWindows  = "windows"
	ServiceHouse    = "house"
	ServiceRoof     = "roof"
	ServiceGutter   = "gutter"
)

// CategoryPressure is the shared bundle category for both pressure-wash
// variants. Every other service is its own category.
const CategoryPressure = "pressure"

// catalog is the static service list, in display order. Entries are created
// at process start and never mutated.
var catalog = []models.Service{
	{
		ID:        ServiceDriveway,
		Name:      "Driveway Pressure Washing",
		BasePrice: 249.00,
		Desc:      "Hot-water pressure wash to lift oil, tire marks and grime from your driveway.",
	},
	{
		ID:        ServicePatio,
		Name:      "Patio Pressure Washing",
		BasePrice: 99.00,
		Desc:      "Patio and walkway surfaces cleaned and brightened.",
	},
	{
		ID:        ServiceWindows,
		Name:      "Window & Screen Cleaning",
		BasePrice: 449.00,
		Desc:      "Interior and exterior glass plus screens, hand-finished streak free.",
	},
	{
		ID:        ServiceHouse,
		Name:      "House Washing",
		BasePrice: 449.00,
		Desc:      "Soft wash for siding, trim and soffits that removes algae and dirt safely.",
	},
	{
		ID:        ServiceRoof,
		Name:      "Roof Cleaning",
		BasePrice: 649.00,
		Desc:      "Low-pressure roof treatment that clears moss, lichen and black streaks.",
	},
	{
		ID:        ServiceGutter,
		Name:      "Gutter Cleaning",
		BasePrice: 249.00,
		Desc:      "Gutters and downspouts cleared of debris and flushed.",
	},
}

// baseMinutes is the single-story, no-guards time estimate per service.
// The gutter entry is the baseline only; DurationService owns the special
// two-story and guard handling.
var baseMinutes = map[string]int{
	ServiceDriveway: 60,
	ServicePatio:    60,
	ServiceWindows:  180,
	ServiceHouse:    120,
	ServiceRoof:     120,
	ServiceGutter:   120,
}

// CatalogService exposes the static service reference data
type CatalogService struct{}

// NewCatalogService creates a new catalog service
func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// Services returns the full catalog in display order.
func (s *CatalogService) Services() []models.Service {
	return append([]models.Service(nil), catalog...)
}

// ByID looks up one catalog entry.
func (s *CatalogService) ByID(id string) (models.Service, bool) {
	for _, svc := range catalog {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.Service{}, false
}

// BaseMinutes returns the baseline duration estimate for a service.
// Unknown ids estimate to zero.
func (s *CatalogService) BaseMinutes(id string) int {
	return baseMinutes[id]
}

// Category returns the bundle-discount category for a service id. Both
// pressure-wash variants collapse into one category; everything else
// counts as itself.
func (s *CatalogService) Category(id string) string {
	if id == ServiceDriveway || id == ServicePatio {
		return CategoryPressure
	}
	return id
}

// SelectedServices returns the selected catalog entries in catalog order,
// silently ignoring unknown ids so a malformed selection still computes.
func (s *CatalogService) SelectedServices(sel models.Selection) []models.Service {
	var selected []models.Service
	for _, svc := range catalog {
		if sel.IsSelected(svc.ID) {
			selected = append(selected, svc)
		}
	}
	return selected
}

// TwoStoryRelevant reports whether the two-story question matters for the
// current selection: it adjusts house, window and gutter work only.
func (s *CatalogService) TwoStoryRelevant(sel models.Selection) bool {
	return sel.IsSelected(ServiceHouse) || sel.IsSelected(ServiceWindows) || sel.IsSelected(ServiceGutter)
}

// GuardsRelevant reports whether the gutter-guard question matters: it only
// affects gutter cleaning.
func (s *CatalogService) GuardsRelevant(sel models.Selection) bool {
	return sel.IsSelected(ServiceGutter)
}
