package api

import (
	"errors"
	"net/http"

	"platewise/recipe-api/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) CustomRecipeDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	err := a.Custom.DeleteByID(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message":   "not_found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "internal_server_error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete custom recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recipe deleted successfully",
	})
}
