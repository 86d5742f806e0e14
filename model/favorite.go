package model

import "time"

type Favorite struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"index;uniqueIndex:idx_favorites_user_recipe;not null" json:"userId"`
	RecipeID  string    `gorm:"uniqueIndex:idx_favorites_user_recipe;not null" json:"recipeId"`
	Title     string    `gorm:"not null" json:"title"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}
