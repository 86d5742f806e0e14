package model

import "time"

type CustomRecipe struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       string      `gorm:"index;not null" json:"userId"`
	Title        string      `gorm:"not null" json:"title"`
	Ingredients  StringSlice `gorm:"not null" json:"ingredients"`
	Instructions string      `gorm:"not null" json:"instructions"`
	Image        string      `json:"image"` // Optional, URL or base64
	CreatedAt    time.Time   `json:"createdAt"`
}
