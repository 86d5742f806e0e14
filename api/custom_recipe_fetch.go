package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) CustomRecipeFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	recipes, err := a.Custom.ListForOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "internal_server_error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch custom recipes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, recipes)
}
