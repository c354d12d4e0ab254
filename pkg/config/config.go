package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	Environment  string
	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M" for 100 req/minute per IP.
	RateLimit string
	// EnforceSettlementTotal, when true, rejects settlements whose totalAmount does not
	// equal the sum of their line amounts. Off by default: callers may legitimately carry
	// rounding or fees in the header total.
	EnforceSettlementTotal bool
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("ENFORCE_SETTLEMENT_TOTAL", false)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.Environment = viper.GetString("APP_ENV")
	if cfg.IsProduction {
		cfg.Environment = "production"
	}
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.EnforceSettlementTotal = viper.GetBool("ENFORCE_SETTLEMENT_TOTAL")

	return cfg, nil
}
