package model

import "time"

// BlacklistedToken holds a token that was logged out before its natural
// expiry. Rows past ExpiresAt are swept by service.BlacklistCleanup
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}
