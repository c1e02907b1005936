package handlers

import (
	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ValidatePromo checks one promo code against a selection. Rejections come
// back as values with a human-readable reason, with HTTP 200 either way:
// an unknown or inapplicable code is a normal outcome, not a request
// failure.
func ValidatePromo(c *gin.Context) {
	var request models.PromoValidateRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	mods := models.Modifiers{TwoStory: request.TwoStory, GutterGuards: request.GutterGuards}
	_, status := handlerServices.QuoteService.ComputeTotals(
		request.Selection, mods, request.Code, request.HouseHalfPrice)
	if status == nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrCodeRequired))
		return
	}

	if !status.Applied {
		handlerServices.Logger.Info("promo code rejected",
			zap.String("code", status.Code),
			zap.String("reason", status.Reason))
	}

	utils.HandleSuccess(c, status)
}
