// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shirou/gopsutil/v3/cpu"
)

// Config holds library configuration
type Config struct {
	LogLevel       string // debug, info, warn, error
	LogPretty      bool   // Human-readable console output
	RollingWorkers int    // Goroutines used for rolling-window computations
}

// Load loads configuration from a .env file (if present) and environment variables.
func Load() (*Config, error) {
	// .env is optional; environment variables take precedence either way.
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("RISK_LOG_LEVEL", "info"),
		LogPretty:      getEnv("RISK_LOG_PRETTY", "true") == "true",
		RollingWorkers: defaultWorkers(),
	}

	if v := os.Getenv("RISK_ROLLING_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RISK_ROLLING_WORKERS %q: %w", v, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("RISK_ROLLING_WORKERS must be positive, got %d", n)
		}
		cfg.RollingWorkers = n
	}

	return cfg, nil
}

// defaultWorkers picks a worker count from the logical CPU count.
func defaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// getEnv retrieves an environment variable value, returning a fallback if the
// variable is not set or is empty.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
