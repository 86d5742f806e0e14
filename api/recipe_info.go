package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) RecipeInfo(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	body, err := a.Recipes.Information(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"message":   "upstream_unavailable",
			"requestID": requestID,
		})

		zap.L().Warn("Recipe info upstream failed", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Data(http.StatusOK, "application/json", body)
}
