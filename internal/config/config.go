// Package config loads promptcost configuration from environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Manjussha/promptcost/internal/platform"
)

// Config holds all runtime configuration for promptcost.
type Config struct {
	DataDir string
	DBPath  string

	DefaultModel        string
	DefaultOutputTokens int

	// HTTPTimeout bounds the pricing refresh fetch so a hung request
	// never blocks the CLI.
	HTTPTimeout time.Duration
	// Offline skips the pricing refresh entirely (defaults + disk cache only).
	Offline bool

	// DailyBudget is the daily spend budget in USD used by the estimate
	// ledger. Zero disables recording and the budget command.
	DailyBudget float64
}

// Load reads environment variables and returns a Config.
// Uses sensible defaults for optional fields.
func Load() *Config {
	dataDir := getEnv("PROMPTCOST_DATA_DIR", platform.DefaultDataDir())

	return &Config{
		DataDir: dataDir,
		DBPath:  getEnv("PROMPTCOST_DB_PATH", filepath.Join(dataDir, "promptcost.db")),

		DefaultModel:        getEnv("PROMPTCOST_MODEL", "gpt-4o"),
		DefaultOutputTokens: getEnvInt("PROMPTCOST_OUTPUT_TOKENS", 500),

		HTTPTimeout: time.Duration(getEnvInt("PROMPTCOST_HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		Offline:     os.Getenv("PROMPTCOST_OFFLINE") != "",

		DailyBudget: getEnvFloat("PROMPTCOST_DAILY_BUDGET", 0),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
