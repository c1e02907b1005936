package handlers

import (
	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Bootstrap computes the widget's initial state from the landing page's
// query string. A matching campaign pre-selects its services and applies
// its promo code before first render; otherwise the widget starts empty.
func Bootstrap(c *gin.Context) {
	response := models.BootstrapResponse{Selection: models.Selection{}}

	trigger := handlerServices.CampaignService.Detect(c.Request.URL.Query())
	if trigger != nil {
		for _, id := range trigger.SelectServices {
			response.Selection[id] = true
		}
		response.PromoCode = trigger.PromoCode
		response.Campaign = trigger

		request := models.QuoteRequest{
			Selection: response.Selection,
			PromoCode: trigger.PromoCode,
		}
		response.Quote = buildQuoteResponse(&request)

		handlerServices.Logger.Info("campaign trigger matched",
			zap.String("campaign", trigger.Campaign),
			zap.String("promoCode", trigger.PromoCode))
	}

	utils.HandleSuccess(c, response)
}
