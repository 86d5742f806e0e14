package api

import (
	"net/http"

	"platewise/recipe-api/middleware"
	"platewise/recipe-api/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLogout blacklists the presented token for the remainder of its
// lifetime. The signature is deliberately not verified, the holder
// believes the token is valid and we only need its expiry claim
func (a *API) UserLogout(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	tokenStr, ok := middleware.BearerToken(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "no_token",
			"requestID": requestID,
		})
		return
	}

	expiresAt, err := security.DecodeExpiry(tokenStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message":   "token_invalid",
			"requestID": requestID,
		})
		return
	}

	if err := a.Blacklist.Revoke(tokenStr, expiresAt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message":   "internal_server_error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to blacklist token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}
