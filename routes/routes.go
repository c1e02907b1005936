package routes

import (
	"github.com/CharlesHoffman-dev/instant-quote/config"
	"github.com/CharlesHoffman-dev/instant-quote/handlers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	// Initialize handlers
	handlers.InitHandlers(cfg, logger)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Quote endpoints
		v1.POST("/quote", handlers.ComputeQuote)
		v1.POST("/quote/export", handlers.ExportQuote)

		// Catalog endpoint
		v1.GET("/catalog", handlers.GetCatalog)

		// Promo endpoint
		v1.POST("/promo/validate", handlers.ValidatePromo)

		// Widget bootstrap (campaign auto-trigger)
		v1.GET("/bootstrap", handlers.Bootstrap)
	}

	// Liveness endpoint
	router.GET("/healthz", handlers.Health)
}
