package api

import (
	"errors"
	"net/http"

	"platewise/recipe-api/model"
	"platewise/recipe-api/store"
	"platewise/recipe-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type favoriteBody struct {
	RecipeID string `json:"recipeId"`
	Title    string `json:"title"`
	Image    string `json:"image"`
}

func (a *API) FavoriteAdd(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data favoriteBody
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

	fav := model.Favorite{
		UserID:   userID,
		RecipeID: data.RecipeID,
		Title:    data.Title,
		Image:    data.Image,
	}

	if err := a.Favorites.Create(&fav); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":   "duplicate_favorite",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "internal_server_error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create favorite", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, fav)
}
