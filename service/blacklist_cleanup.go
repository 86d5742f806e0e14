// Package service contains background tasks that run next to the HTTP
// server
package service

import (
	"time"

	"platewise/recipe-api/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// BlacklistCleanup periodically deletes blacklist rows whose token has
// expired on its own. The blacklist only ever needs to hold entries for
// the remaining lifetime of a token, which keeps its size bounded
func BlacklistCleanup(t time.Duration, db *gorm.DB) {
	ticker := time.NewTicker(t)

	zap.L().Debug("Blacklist cleanup attached", zap.Duration("tick_every", t))

	go func() {
		for range ticker.C {
			res := db.
				Where("expires_at < ?", time.Now()).
				Delete(model.BlacklistedToken{})
			if res.Error != nil {
				zap.L().Error("Failed to cleanup expired blacklist entries", zap.Error(res.Error))
				continue
			}

			if res.RowsAffected > 0 {
				zap.L().Debug("Cleaned up expired blacklist entries", zap.Int64("count", res.RowsAffected))
			}
		}
	}()
}
