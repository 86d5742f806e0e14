package api

import (
	"net/http"

	"platewise/recipe-api/model"
	"platewise/recipe-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type customRecipeBody struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Image        string   `json:"image"`
}

func (a *API) CustomRecipeAdd(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data customRecipeBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.CustomRecipeValidator(data.Title, data.Ingredients, data.Instructions); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   err.Error(),
			"requestID": requestID,
		})
		return
	}

	recipe := model.CustomRecipe{
		UserID:       userID,
		Title:        data.Title,
		Ingredients:  data.Ingredients,
		Instructions: data.Instructions,
		Image:        data.Image,
	}

	if err := a.Custom.Create(&recipe); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "internal_server_error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create custom recipe", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, recipe)
}
