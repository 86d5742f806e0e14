// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
)

func genSecret() string {
	b := make([]byte, 64)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")

	v.BindEnv("db.driver", "db_driver")
	v.BindEnv("db.dsn", "db_dsn")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("jwt.ttl_hours", "jwt_ttl_hours")
	v.BindEnv("jwt.revoke_on_password_change", "jwt_revoke_on_password_change")

	v.BindEnv("blacklist.sweep_minutes", "blacklist_sweep_minutes")

	v.BindEnv("security.argon.memory_kib", "security_argon_memory_kib")
	v.BindEnv("security.argon.iterations", "security_argon_iterations")
	v.BindEnv("security.argon.parallelism", "security_argon_parallelism")

	v.BindEnv("spoonacular.api_key", "spoonacular_api_key")
	v.BindEnv("spoonacular.base_url", "spoonacular_base_url")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "database.db")

	v.SetDefault("jwt.ttl_hours", 72)
	v.SetDefault("jwt.revoke_on_password_change", false)

	v.SetDefault("blacklist.sweep_minutes", 30)

	v.SetDefault("security.argon.memory_kib", 64*1024)
	v.SetDefault("security.argon.iterations", 3)
	v.SetDefault("security.argon.parallelism", 2)

	v.SetDefault("spoonacular.base_url", "https://api.spoonacular.com")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validDrivers, v.GetString("db.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("db.dsn") == "" {
		return errors.New("database dsn can't be empty")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret() + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetInt("jwt.ttl_hours") <= 0 {
		return errors.New("jwt.ttl_hours must be bigger than 0")
	}

	if v.GetInt("blacklist.sweep_minutes") <= 0 {
		return errors.New("blacklist.sweep_minutes must be bigger than 0")
	}

	if v.GetInt("security.argon.memory_kib") < 8*1024 {
		return errors.New("security.argon.memory_kib must be at least 8192")
	}

	if v.GetInt("security.argon.iterations") <= 0 {
		return errors.New("security.argon.iterations must be bigger than 0")
	}

	if p := v.GetInt("security.argon.parallelism"); p <= 0 || p > 255 {
		return errors.New("security.argon.parallelism must be between 1 and 255")
	}

	if v.GetString("spoonacular.api_key") == "" {
		fmt.Println("[WARNING]: No spoonacular.api_key set. Recipe search endpoints will fail until one is provided")
	}

	return nil
}
