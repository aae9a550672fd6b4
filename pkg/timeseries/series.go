// Package timeseries holds price history types and the conversion of aligned
// price histories into periodic return matrices.
package timeseries

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrEmptySeries indicates a series was constructed without observations.
	ErrEmptySeries = errors.New("asset series has no observations")

	// ErrUnorderedSeries indicates timestamps are not strictly increasing.
	ErrUnorderedSeries = errors.New("timestamps must be strictly increasing")

	// ErrInvalidPrice indicates a price that is NaN or infinite.
	ErrInvalidPrice = errors.New("price must be a finite number")
)

// PricePoint is a single dated price observation.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// AssetSeries is an immutable, chronologically ordered price history for one
// named asset. Construct with NewAssetSeries; the zero value is empty.
type AssetSeries struct {
	name   string
	points []PricePoint
}

// NewAssetSeries validates and copies the given observations.
// Timestamps must be strictly increasing and prices finite. Non-positive
// prices are accepted here; return builders reject them where the return
// formula is undefined.
func NewAssetSeries(name string, points []PricePoint) (AssetSeries, error) {
	if name == "" {
		return AssetSeries{}, fmt.Errorf("asset series requires a name")
	}
	if len(points) == 0 {
		return AssetSeries{}, fmt.Errorf("asset %s: %w", name, ErrEmptySeries)
	}

	copied := make([]PricePoint, len(points))
	copy(copied, points)

	for i, p := range copied {
		if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return AssetSeries{}, fmt.Errorf("asset %s at %s: %w", name, p.Time.Format(time.RFC3339), ErrInvalidPrice)
		}
		if i > 0 && !copied[i-1].Time.Before(p.Time) {
			return AssetSeries{}, fmt.Errorf("asset %s at %s: %w", name, p.Time.Format(time.RFC3339), ErrUnorderedSeries)
		}
	}

	return AssetSeries{name: name, points: copied}, nil
}

// Name returns the asset identifier.
func (s AssetSeries) Name() string { return s.name }

// Len returns the number of observations.
func (s AssetSeries) Len() int { return len(s.points) }

// Points returns a copy of the observations in chronological order.
func (s AssetSeries) Points() []PricePoint {
	out := make([]PricePoint, len(s.points))
	copy(out, s.points)
	return out
}
