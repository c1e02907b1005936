package services

import (
	"math"

	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"
)

// Promo codes in the static registry.
const (
	PromoCodeRoof50    = "ROOF50"
	PromoCodeNewClient = "NEWCLIENT25"
)

// PromoRule defines one named promo: an eligibility predicate over the
// selection and an amount function over the post-bundle-discount subtotal.
// At most one promo is active per quote; the caller replaces or clears the
// code between requests.
type PromoRule struct {
	Code             string
	Label            string
	Eligible         func(selected []models.Service) bool
	IneligibleReason string
	Amount           func(afterBundle float64) float64
}

// PromoService resolves and applies promo codes from the static registry
type PromoService struct {
	catalog  *CatalogService
	registry map[string]PromoRule
}

// NewPromoService creates a new promo service with the built-in registry
func NewPromoService(catalog *CatalogService) *PromoService {
	s := &PromoService{
		catalog:  catalog,
		registry: make(map[string]PromoRule),
	}

	s.register(PromoRule{
		Code:  PromoCodeRoof50,
		Label: "$50 off roof cleaning",
		Eligible: func(selected []models.Service) bool {
			for _, svc := range selected {
				if svc.ID == ServiceRoof {
					return true
				}
			}
			return false
		},
		IneligibleReason: "Add roof cleaning to your quote to use ROOF50",
		Amount: func(afterBundle float64) float64 {
			return utils.Min(50, math.Max(0, afterBundle))
		},
	})

	s.register(PromoRule{
		Code:  PromoCodeNewClient,
		Label: "$25 off your first clean",
		Eligible: func(selected []models.Service) bool {
			return len(selected) > 0
		},
		IneligibleReason: "Select at least one service to use NEWCLIENT25",
		Amount: func(afterBundle float64) float64 {
			return utils.Min(25, math.Max(0, afterBundle))
		},
	})

	return s
}

func (s *PromoService) register(rule PromoRule) {
	s.registry[rule.Code] = rule
}

// Lookup finds a rule by canonical code.
func (s *PromoService) Lookup(code string) (PromoRule, bool) {
	rule, ok := s.registry[utils.CanonicalPromoCode(code)]
	return rule, ok
}

// Apply resolves a code against the current selection and the
// post-bundle-discount subtotal. An empty code returns nil (no promo in
// play). Unknown or ineligible codes come back rejected with a reason and
// change nothing; an eligible code's amount is capped at the remaining
// subtotal so the promo can never drive the pre-minimum-fee amount
// negative.
func (s *PromoService) Apply(code string, sel models.Selection, afterBundle float64) *models.PromoStatus {
	canonical := utils.CanonicalPromoCode(code)
	if canonical == "" {
		return nil
	}

	rule, ok := s.registry[canonical]
	if !ok {
		return &models.PromoStatus{
			Code:   canonical,
			Reason: "Unknown promo code",
		}
	}

	if !rule.Eligible(s.catalog.SelectedServices(sel)) {
		return &models.PromoStatus{
			Code:   canonical,
			Label:  rule.Label,
			Reason: rule.IneligibleReason,
		}
	}

	amount := utils.Round(utils.Min(afterBundle, rule.Amount(afterBundle)))
	return &models.PromoStatus{
		Code:    canonical,
		Label:   rule.Label,
		Applied: true,
		Amount:  amount,
	}
}
