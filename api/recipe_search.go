package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeSearch proxies an ingredient search to the external recipe API.
// The payload is passed through untouched, the backend has no opinion
// on its shape
func (a *API) RecipeSearch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	ingredients := c.Query("ingredients")
	if ingredients == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "No ingredients provided",
			"requestID": requestID,
		})
		return
	}

	body, err := a.Recipes.FindByIngredients(c.Request.Context(), ingredients, 12)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"message":   "upstream_unavailable",
			"requestID": requestID,
		})

		zap.L().Warn("Recipe search upstream failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
