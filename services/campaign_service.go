package services

import (
	"net/url"

	"github.com/CharlesHoffman-dev/instant-quote/models"
)

// Roof-cleaning doorhanger campaign markers. All three must appear on the
// landing page's query string for the trigger to fire.
const (
	campaignSourceDoorhanger = "doorhanger"
	campaignMediumPrint      = "print"
	campaignRoofCleaning     = "roof_cleaning"
)

// CampaignService detects marketing-campaign markers in the page URL the
// widget was loaded from
type CampaignService struct{}

// NewCampaignService creates a new campaign service
func NewCampaignService() *CampaignService {
	return &CampaignService{}
}

// Detect returns the campaign trigger matching the landing page's query
// parameters, or nil when no campaign applies. The roof-cleaning doorhanger
// campaign pre-selects roof cleaning and applies ROOF50 before first render.
func (s *CampaignService) Detect(query url.Values) *models.CampaignTrigger {
	if query.Get("utm_source") != campaignSourceDoorhanger ||
		query.Get("utm_medium") != campaignMediumPrint ||
		query.Get("utm_campaign") != campaignRoofCleaning {
		return nil
	}

	return &models.CampaignTrigger{
		Campaign:       campaignRoofCleaning,
		SelectServices: []string{ServiceRoof},
		PromoCode:      PromoCodeRoof50,
	}
}
