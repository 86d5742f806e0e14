package model

import "time"

type ViewedRecipe struct {
	ID       uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   string    `gorm:"index;not null" json:"userId"`
	RecipeID string    `gorm:"not null" json:"recipeId"`
	Title    string    `gorm:"not null" json:"title"`
	Image    string    `json:"image"`
	ViewedAt time.Time `gorm:"index" json:"viewedAt"`
}
