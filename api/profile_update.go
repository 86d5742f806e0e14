package api

import (
	"errors"
	"net/http"
	"time"

	"platewise/recipe-api/model"
	"platewise/recipe-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type profileUpdateBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate changes only the supplied fields. A password change
// re-hashes with a fresh salt and, when jwt.revoke_on_password_change is
// enabled, invalidates every token issued before the change
func (a *API) ProfileUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data profileUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	updates := map[string]any{}

	if data.Name != "" {
		updates["name"] = data.Name
	}

	if data.Email != "" {
		if err := validators.EmailValidator(data.Email); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":   err.Error(),
				"requestID": requestID,
			})
			return
		}

		var taken bool

		err := a.DB.Model(model.User{}).
			Select("count(*) > 0").
			Where("email = ? AND id <> ?", data.Email, userID).
			Find(&taken).
			Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message":   "internal_server_error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check email uniqueness", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if taken {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":   "email_in_use",
				"requestID": requestID,
			})
			return
		}

		updates["email"] = data.Email
	}

	if data.Password != "" {
		if err := validators.PasswordValidator(data.Password); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":   err.Error(),
				"requestID": requestID,
			})
			return
		}

		hash, err := a.Argon.GenerateFromPassword(data.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message":   "internal_server_error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		updates["password_hash"] = hash

		if a.RevokeOnPasswordChange {
			updates["tokens_invalid_before"] = time.Now()
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "Nothing to update",
			"requestID": requestID,
		})
		return
	}

	res := a.DB.Model(model.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message":   "email_in_use",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "internal_server_error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update profile", zap.Error(res.Error), zap.String("requestID", requestID))
		return
	}

	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"message":   "user_not_found",
			"requestID": requestID,
		})
		return
	}

	var user model.User
	if err := a.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "internal_server_error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to reload profile", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
	})
}
