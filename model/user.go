// Package model defines database models
package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"unique; not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Tokens issued before this timestamp are rejected. Only set when
	// jwt.revoke_on_password_change is enabled and a password changes
	TokensInvalidBefore *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt"`

	Favorites     []Favorite     `gorm:"foreignKey:UserID" json:"-"`
	Viewed        []ViewedRecipe `gorm:"foreignKey:UserID" json:"-"`
	CustomRecipes []CustomRecipe `gorm:"foreignKey:UserID" json:"-"`
}
