package middleware

import (
	"net/http"
	"strings"

	"platewise/recipe-api/blacklist"
	"platewise/recipe-api/model"
	"platewise/recipe-api/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BearerToken extracts the token from an Authorization: Bearer header.
// Shared with the logout handler which guards itself
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

// NewJWTMiddleware gates every protected route. A request only proceeds
// if it carries a bearer token that is signed, unexpired, not logged out
// and resolves to a user that still exists. The resolved user id is set
// as userID on the context
func NewJWTMiddleware(d *gorm.DB, bl *blacklist.Blacklist, tokens *security.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":   "no_token",
				"requestID": requestID,
			})
			return
		}

		revoked, err := bl.IsRevoked(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message":   "internal_server_error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check token blacklist", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":   "revoked_token",
				"requestID": requestID,
			})
			return
		}

		userID, issuedAt, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":   "token_invalid",
				"requestID": requestID,
			})
			return
		}

		// A valid token for a deleted account must not crash anything,
		// it's simply no longer a valid token
		var user model.User

		err = d.Where("id = ?", userID).First(&user).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"message":   "token_invalid",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message":   "internal_server_error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if user.TokensInvalidBefore != nil && issuedAt.Before(*user.TokensInvalidBefore) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":   "token_invalid",
				"requestID": requestID,
			})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
