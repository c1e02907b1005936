package handlers

import (
	"github.com/CharlesHoffman-dev/instant-quote/models"
	"github.com/CharlesHoffman-dev/instant-quote/utils"

	"github.com/gin-gonic/gin"
)

// GetCatalog returns the catalog priced for the modifiers in the query
// string, so the widget can render live prices as questions get answered.
func GetCatalog(c *gin.Context) {
	mods := models.Modifiers{
		TwoStory:     answerFromQuery(c, "twoStory"),
		GutterGuards: answerFromQuery(c, "gutterGuards"),
	}
	houseHalfPrice := c.Query("houseHalfPrice") == "true"

	priced := handlerServices.PricingService.PricedCatalog(mods, houseHalfPrice)

	entries := make([]models.CatalogEntry, len(priced))
	for i, svc := range priced {
		entries[i] = models.CatalogEntry{
			PricedService:    svc,
			EstimatedMinutes: handlerServices.DurationService.ServiceMinutes(svc.ID, mods),
		}
	}

	utils.HandleSuccess(c, models.CatalogResponse{Services: entries})
}

// answerFromQuery reads a tri-state answer from the query string. Anything
// unparseable counts as unanswered rather than failing the request.
func answerFromQuery(c *gin.Context, name string) models.Answer {
	answer, err := models.ParseAnswer(c.Query(name))
	if err != nil {
		return models.AnswerUnanswered
	}
	return answer
}
