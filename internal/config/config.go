package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	FredAPIKey   string
	CacheDir     string
	DatabasePath string
	LogLevel     string
	Port         int
	DevMode      bool

	// Cache TTLs per data class
	TTLMarketData time.Duration
	TTLHistorical time.Duration
	TTLTreasury   time.Duration

	// Default model assumptions
	EquityRiskPremium float64
	TaxRate           float64
	CostOfDebt        float64
	TerminalGrowth    float64
	ProjectionYears   int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		FredAPIKey:   getEnv("FRED_API_KEY", ""),
		CacheDir:     getEnv("DCF_CACHE_DIR", defaultCacheDir()),
		DatabasePath: getEnv("DATABASE_PATH", "./data/dcf.db"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnvAsInt("GO_PORT", 8001),
		DevMode:      getEnvAsBool("DEV_MODE", false),

		TTLMarketData: getEnvAsDuration("CACHE_TTL_MARKET_DATA", 15*time.Minute),
		TTLHistorical: getEnvAsDuration("CACHE_TTL_HISTORICAL", 24*time.Hour),
		TTLTreasury:   getEnvAsDuration("CACHE_TTL_TREASURY", time.Hour),

		EquityRiskPremium: getEnvAsFloat("EQUITY_RISK_PREMIUM", 0.055),
		TaxRate:           getEnvAsFloat("TAX_RATE", 0.21),
		CostOfDebt:        getEnvAsFloat("COST_OF_DEBT", 0.05),
		TerminalGrowth:    getEnvAsFloat("TERMINAL_GROWTH", 0.025),
		ProjectionYears:   getEnvAsInt("PROJECTION_YEARS", 5),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.CacheDir == "" {
		return fmt.Errorf("DCF_CACHE_DIR is required")
	}
	if c.ProjectionYears < 1 {
		return fmt.Errorf("PROJECTION_YEARS must be at least 1")
	}

	// Note: FRED_API_KEY optional; risk-free rate falls back to default

	return nil
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dcf-builder"
	}
	return filepath.Join(home, ".dcf-builder")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
