package services

import (
	"github.com/CharlesHoffman-dev/instant-quote/models"
)

// Gutter durations get their own table: two-story gutters take longer per
// pass, and guards double whichever baseline applies.
const (
	GutterMinutes         = 120
	GutterTwoStoryMinutes = 180
)

// DurationService estimates total job time from the selection and modifiers
type DurationService struct {
	catalog *CatalogService
}

// NewDurationService creates a new duration service
func NewDurationService(catalog *CatalogService) *DurationService {
	return &DurationService{catalog: catalog}
}

// ServiceMinutes estimates one service's duration under the modifiers.
func (s *DurationService) ServiceMinutes(id string, mods models.Modifiers) int {
	if id == ServiceGutter {
		base := GutterMinutes
		if mods.TwoStory.Bool() {
			base = GutterTwoStoryMinutes
		}
		if mods.GutterGuards.Bool() {
			base *= 2
		}
		return base
	}
	return s.catalog.BaseMinutes(id)
}

// TotalMinutes sums the selected services' estimates. Every selected
// service contributes independently: picking both pressure-wash variants
// adds both durations even though they share a discount category.
func (s *DurationService) TotalMinutes(sel models.Selection, mods models.Modifiers) int {
	total := 0
	for _, svc := range s.catalog.SelectedServices(sel) {
		total += s.ServiceMinutes(svc.ID, mods)
	}
	return total
}
