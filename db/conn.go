// Package db contains the database connection and migration setup
package db

import (
	"fmt"
	"platewise/recipe-api/model"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// New opens the database configured under db.driver and db.dsn and
// runs migrations on it. TranslateError is enabled so unique constraint
// violations surface as gorm.ErrDuplicatedKey on both drivers
func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch viper.GetString("db.driver") {
	case "postgres":
		dial = postgres.Open(viper.GetString("db.dsn"))
	default:
		dial = sqlite.Open(viper.GetString("db.dsn"))
	}

	d, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	if err := Migrate(d); err != nil {
		return nil, err
	}

	return d, nil
}

// Migrate creates or updates all tables. Split out of New so tests can
// migrate their own in-memory databases
func Migrate(d *gorm.DB) error {
	err := d.AutoMigrate(
		model.User{},
		model.BlacklistedToken{},
		model.Favorite{},
		model.ViewedRecipe{},
		model.CustomRecipe{},
	)
	if err != nil {
		return fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return nil
}
