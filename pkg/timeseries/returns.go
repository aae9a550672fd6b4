package timeseries

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrInsufficientData indicates too few overlapping observations to
	// compute the requested statistic (at least 2 prices make 1 return).
	ErrInsufficientData = errors.New("insufficient overlapping observations")

	// ErrNonPositivePrice indicates a price for which the return formula is
	// undefined: any price <= 0 for log returns, a base price <= 0 for
	// simple returns.
	ErrNonPositivePrice = errors.New("non-positive price")
)

// ReturnMethod selects how periodic returns are computed from prices.
type ReturnMethod int

const (
	// Log computes ln(p1/p0).
	Log ReturnMethod = iota
	// Simple computes (p1-p0)/p0.
	Simple
)

// String returns the method name.
func (m ReturnMethod) String() string {
	switch m {
	case Log:
		return "log"
	case Simple:
		return "simple"
	default:
		return fmt.Sprintf("ReturnMethod(%d)", int(m))
	}
}

// BuildReturns aligns the given price series to their common timestamps and
// converts consecutive aligned prices into periodic returns.
//
// Column order follows the order in which series are supplied. The first
// aligned row has no prior price and is dropped, so the result has one fewer
// row than the aligned price table. Returns ErrInsufficientData when fewer
// than 2 timestamps are shared by every series, and ErrNonPositivePrice when
// the chosen method is undefined for an aligned price. No partial matrix is
// produced on error.
func BuildReturns(series []AssetSeries, method ReturnMethod) (*ReturnMatrix, error) {
	if method != Log && method != Simple {
		return nil, fmt.Errorf("unknown return method %d", int(method))
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no price series supplied: %w", ErrInsufficientData)
	}

	seen := make(map[string]bool, len(series))
	for _, s := range series {
		if s.Len() == 0 {
			return nil, fmt.Errorf("asset %q: %w", s.Name(), ErrEmptySeries)
		}
		if seen[s.Name()] {
			return nil, fmt.Errorf("duplicate asset name %q", s.Name())
		}
		seen[s.Name()] = true
	}

	times, prices := alignSeries(series)
	if len(times) < 2 {
		return nil, fmt.Errorf("%d aligned timestamps across %d assets: %w", len(times), len(series), ErrInsufficientData)
	}

	assets := make([]string, len(series))
	for i, s := range series {
		assets[i] = s.Name()
	}

	// Validate prices up front so an error never leaves a partial result.
	for col, s := range series {
		for row, p := range prices {
			bad := false
			switch method {
			case Log:
				bad = p[col] <= 0
			case Simple:
				// The last aligned price is never a denominator.
				bad = p[col] <= 0 && row < len(prices)-1
			}
			if bad {
				return nil, fmt.Errorf("asset %s at %s (method %s): %w",
					s.Name(), times[row].Format(time.RFC3339), method, ErrNonPositivePrice)
			}
		}
	}

	rows := len(times) - 1
	data := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, len(series))
		for j := range series {
			p0 := prices[i][j]
			p1 := prices[i+1][j]
			if method == Log {
				row[j] = math.Log(p1 / p0)
			} else {
				row[j] = (p1 - p0) / p0
			}
		}
		data[i] = row
	}

	return &ReturnMatrix{times: times[1:], assets: assets, data: data}, nil
}

// alignSeries intersects the timestamps of all series and returns the shared
// timestamps (ascending) with one price row per shared timestamp.
func alignSeries(series []AssetSeries) ([]time.Time, [][]float64) {
	// Index every series by timestamp for O(1) membership checks.
	indexes := make([]map[int64]float64, len(series))
	for i, s := range series {
		idx := make(map[int64]float64, len(s.points))
		for _, p := range s.points {
			idx[p.Time.UnixNano()] = p.Price
		}
		indexes[i] = idx
	}

	// Walk the first series in order; it is already strictly increasing, so
	// the intersection comes out chronologically sorted.
	var times []time.Time
	var prices [][]float64
	for _, p := range series[0].points {
		key := p.Time.UnixNano()
		row := make([]float64, len(series))
		shared := true
		for i, idx := range indexes {
			v, ok := idx[key]
			if !ok {
				shared = false
				break
			}
			row[i] = v
		}
		if shared {
			times = append(times, p.Time)
			prices = append(prices, row)
		}
	}

	return times, prices
}
