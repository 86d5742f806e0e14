// Package blacklist tracks tokens that were logged out before their
// natural expiry. Entries live in the database for durability with a
// ttlcache front so the per-request revocation check stays off the
// hot path. Both layers drop entries on their own once the token would
// have expired anyway
package blacklist

import (
	"errors"
	"time"

	"platewise/recipe-api/model"

	"github.com/jellydator/ttlcache/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Blacklist struct {
	db    *gorm.DB
	cache *ttlcache.Cache
}

func New(db *gorm.DB) *Blacklist {
	c := ttlcache.NewCache()
	c.SkipTTLExtensionOnHit(true)

	return &Blacklist{
		db:    db,
		cache: c,
	}
}

// Revoke blacklists a token until expiresAt. Revoking the same token
// twice is a no-op. Tokens that are already past their expiry are not
// stored, the session guard rejects them on its own
func (b *Blacklist) Revoke(token string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	err := b.db.Create(&model.BlacklistedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}

	if err := b.cache.SetWithTTL(token, true, ttl); err != nil {
		zap.L().Warn("Failed to cache revoked token", zap.Error(err))
	}

	return nil
}

// IsRevoked reports whether a token was logged out and hasn't expired
// yet. Cache misses fall through to the database and warm the cache
func (b *Blacklist) IsRevoked(token string) (bool, error) {
	if _, err := b.cache.Get(token); err == nil {
		return true, nil
	}

	var entry model.BlacklistedToken

	err := b.db.
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&entry).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	if err := b.cache.SetWithTTL(token, true, time.Until(entry.ExpiresAt)); err != nil {
		zap.L().Warn("Failed to cache revoked token", zap.Error(err))
	}

	return true, nil
}

func (b *Blacklist) Close() {
	b.cache.Close()
}
