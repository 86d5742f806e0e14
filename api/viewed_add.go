package api

import (
	"net/http"
	"time"

	"platewise/recipe-api/model"
	"platewise/recipe-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type viewedBody struct {
	RecipeID string `json:"recipeId"`
	Title    string `json:"title"`
	Image    string `json:"image"`
}

func (a *API) ViewedAdd(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data viewedBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.RecipeRefValidator(data.RecipeID, data.Title); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   err.Error(),
			"requestID": requestID,
		})
		return
	}

	entry := model.ViewedRecipe{
		UserID:   userID,
		RecipeID: data.RecipeID,
		Title:    data.Title,
		Image:    data.Image,
		ViewedAt: time.Now(),
	}

	if err := a.Viewed.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "internal_server_error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to record viewed recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, entry)
}
