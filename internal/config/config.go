// Package config holds the runtime configuration.
// Values are loaded from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Config holds all application configuration.
type Config struct {
	// Server
	Port      string
	GinMode   string
	LogFormat string

	// Database. DBDSN is the sqlite file; when DB_HOST is set the
	// postgres variables take over (see models.Connect).
	DBDSN string

	// CORS origins, space separated. Empty disables CORS handling.
	CORSAllowOrigins string

	// Mount the pprof routes when set.
	EnablePprof bool

	// Income share (in percent) above which an expense needs explicit
	// confirmation.
	ExpenseWarningPercent decimal.Decimal
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:                  getEnv("PORT", "8080"),
		GinMode:               getEnv("GIN_MODE", "release"),
		LogFormat:             getEnv("LOG_FORMAT", ""),
		DBDSN:                 getEnv("DB_DSN", "data/finanzas.db"),
		CORSAllowOrigins:      getEnv("CORS_ALLOW_ORIGINS", ""),
		EnablePprof:           getEnvBool("ENABLE_PPROF", false),
		ExpenseWarningPercent: decimal.NewFromInt(int64(getEnvInt("EXPENSE_WARNING_PERCENT", 70))),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
