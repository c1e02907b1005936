package handlers

import (
	"net/http"

	"github.com/CharlesHoffman-dev/instant-quote/config"
	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/services"
	"github.com/CharlesHoffman-dev/instant-quote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	CatalogService  *services.CatalogService
	PricingService  *services.PricingService
	DurationService *services.DurationService
	DiscountService *services.DiscountService
	PromoService    *services.PromoService
	QuoteService    *services.QuoteService
	BookingService  *services.BookingService
	CampaignService *services.CampaignService
	ExportService   *services.ExportService
	Logger          *zap.Logger
}

// NewHandlerServices creates a new handler services instance
func NewHandlerServices(cfg *config.Config, logger *zap.Logger) *HandlerServices {
	catalogService := services.NewCatalogService()
	pricingService := services.NewPricingService(catalogService)
	durationService := services.NewDurationService(catalogService)
	discountService := services.NewDiscountService(catalogService)
	promoService := services.NewPromoService(catalogService)

	return &HandlerServices{
		CatalogService:  catalogService,
		PricingService:  pricingService,
		DurationService: durationService,
		DiscountService: discountService,
		PromoService:    promoService,
		QuoteService: services.NewQuoteService(
			catalogService,
			pricingService,
			durationService,
			discountService,
			promoService,
		),
		BookingService:  services.NewBookingService(catalogService, cfg.CalendarBaseURL),
		CampaignService: services.NewCampaignService(),
		ExportService:   services.NewExportService(),
		Logger:          logger,
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers(cfg *config.Config, logger *zap.Logger) {
	handlerServices = NewHandlerServices(cfg, logger)
}

// buildQuoteResponse runs the full engine for one widget state: totals,
// line items, booking deep link, scheduling gate, upsell hint and promo
// outcome. Every call recomputes from scratch so no stale partial total is
// ever visible.
func buildQuoteResponse(request *models.QuoteRequest) *models.QuoteResponse {
	mods := request.Mods()
	quoteRef := utils.GenerateQuoteRef()

	totals, promoStatus := handlerServices.QuoteService.ComputeTotals(
		request.Selection, mods, request.PromoCode, request.HouseHalfPrice)
	lines := handlerServices.QuoteService.Lines(request.Selection, mods, request.HouseHalfPrice)

	return &models.QuoteResponse{
		QuoteRef:       quoteRef,
		Totals:         totals,
		Lines:          lines,
		BookingURL:     handlerServices.BookingService.BookingURL(quoteRef, totals, lines, request.Selection, mods, request.HouseHalfPrice),
		HourBucket:     handlerServices.BookingService.HourBucket(totals.DurationMinutes),
		Schedulable:    handlerServices.QuoteService.Schedulable(request.Selection, mods),
		MissingAnswers: handlerServices.QuoteService.MissingAnswers(request.Selection, mods),
		Promo:          promoStatus,
		Upsell:         handlerServices.QuoteService.UpsellOffer(request.Selection, mods),
	}
}

// Health reports service liveness
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
