// Package risk computes portfolio-level risk statistics: the sample
// covariance of a return matrix, portfolio volatility (point-in-time and
// rolling), and each asset's marginal and percentage contribution to total
// risk. All operations are pure functions of their inputs; the Calculator
// only carries a logger and a worker count for the rolling engine.
package risk

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/aristath/riskmetrics/internal/config"
)

// Calculator computes portfolio risk statistics.
type Calculator struct {
	log     zerolog.Logger
	workers int
}

// NewCalculator creates a calculator with the rolling worker count taken from
// the environment (RISK_ROLLING_WORKERS, defaulting to the CPU count).
func NewCalculator(log zerolog.Logger) *Calculator {
	workers := 0
	if cfg, err := config.Load(); err == nil {
		workers = cfg.RollingWorkers
	}
	return NewCalculatorWithWorkers(log, workers)
}

// NewCalculatorWithWorkers creates a calculator with an explicit worker count
// for rolling-window computations. Non-positive counts fall back to the CPU
// count.
func NewCalculatorWithWorkers(log zerolog.Logger, workers int) *Calculator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Calculator{
		log:     log.With().Str("component", "risk").Logger(),
		workers: workers,
	}
}
