package risk

import (
	"fmt"
	"sync"
	"time"

	"github.com/aristath/riskmetrics/pkg/timeseries"
)

// RollingPoint is one rolling-window volatility observation, keyed by the
// last timestamp of its window so a statistic "as of" a date never uses
// information from after that date.
type RollingPoint struct {
	Time   time.Time
	StdDev float64
}

// RollingVolatilitySeries is an ordered sequence of rolling volatilities,
// ascending by end timestamp.
type RollingVolatilitySeries []RollingPoint

// rollingResult carries one window's volatility back from a worker.
type rollingResult struct {
	index  int
	stdDev float64
	err    error
}

// RollingPortfolioStdDev computes portfolio volatility over every window of
// the given size, advancing one row at a time. Each window's covariance and
// volatility are derived independently, so windows are dispatched to a worker
// pool and results are re-assembled in window order.
//
// A window of 1 or less fails with ErrInvalidWindow. Fewer rows than the
// window is not an error: there is nothing to compute, and the result is an
// empty series.
func (c *Calculator) RollingPortfolioStdDev(
	returns *timeseries.ReturnMatrix,
	weights []float64,
	window int,
) (RollingVolatilitySeries, error) {
	if window <= 1 {
		return nil, fmt.Errorf("window %d: %w", window, ErrInvalidWindow)
	}
	if len(weights) != returns.NumAssets() {
		return nil, fmt.Errorf("%d weights for %d assets: %w", len(weights), returns.NumAssets(), ErrDimensionMismatch)
	}

	rows := returns.NumRows()
	if rows < window {
		return RollingVolatilitySeries{}, nil
	}
	numWindows := rows - window + 1

	jobs := make(chan int, numWindows)
	results := make(chan rollingResult, numWindows)

	workers := c.workers
	if numWindows < workers {
		workers = numWindows
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for start := range jobs {
				sd, err := c.windowStdDev(returns, weights, start, window)
				results <- rollingResult{index: start, stdDev: sd, err: err}
			}
		}()
	}

	for start := 0; start < numWindows; start++ {
		jobs <- start
	}
	close(jobs)

	wg.Wait()
	close(results)

	series := make(RollingVolatilitySeries, numWindows)
	var firstErr error
	firstErrIndex := numWindows
	for r := range results {
		if r.err != nil {
			// Deterministic error selection regardless of completion order.
			if r.index < firstErrIndex {
				firstErr = r.err
				firstErrIndex = r.index
			}
			continue
		}
		series[r.index] = RollingPoint{
			Time:   returns.Timestamp(r.index + window - 1),
			StdDev: r.stdDev,
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	c.log.Debug().
		Int("window", window).
		Int("num_windows", numWindows).
		Int("workers", workers).
		Msg("Computed rolling portfolio volatility")

	return series, nil
}

// windowStdDev computes the volatility of a single window.
func (c *Calculator) windowStdDev(
	returns *timeseries.ReturnMatrix,
	weights []float64,
	start, window int,
) (float64, error) {
	sub := returns.Window(start, window)

	cov, err := c.Covariance(sub)
	if err != nil {
		return 0, fmt.Errorf("window starting at row %d: %w", start, err)
	}

	sd, err := c.PortfolioStdDev(weights, cov)
	if err != nil {
		return 0, fmt.Errorf("window starting at row %d: %w", start, err)
	}
	return sd, nil
}
