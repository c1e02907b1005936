package handlers

import (
	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ComputeQuote handles the full quote computation for one widget state
func ComputeQuote(c *gin.Context) {
	var request models.QuoteRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	response := buildQuoteResponse(&request)

	// A rejected code is a normal outcome for the caller, but worth a log
	// line for the business.
	if response.Promo != nil && !response.Promo.Applied {
		handlerServices.Logger.Info("promo code rejected",
			zap.String("code", response.Promo.Code),
			zap.String("reason", response.Promo.Reason))
	}

	utils.HandleSuccess(c, response)
}
