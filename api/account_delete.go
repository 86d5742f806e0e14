package api

import (
	"net/http"

	"platewise/recipe-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AccountDelete removes the user together with everything they own.
// The cascade runs in one transaction so a crash can't leave orphaned
// rows behind
func (a *API) AccountDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(model.Favorite{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(model.ViewedRecipe{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(model.CustomRecipe{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", userID).Delete(model.User{}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "internal_server_error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete account", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account deleted successfully",
	})
}
