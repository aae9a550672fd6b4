package timeseries

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestNewAssetSeries(t *testing.T) {
	tests := []struct {
		name    string
		asset   string
		points  []PricePoint
		wantErr error
	}{
		{
			name:  "valid series",
			asset: "AAA",
			points: []PricePoint{
				{Time: day(0), Price: 100},
				{Time: day(1), Price: 101},
			},
		},
		{
			name:    "empty series",
			asset:   "AAA",
			points:  nil,
			wantErr: ErrEmptySeries,
		},
		{
			name:  "duplicate timestamp",
			asset: "AAA",
			points: []PricePoint{
				{Time: day(0), Price: 100},
				{Time: day(0), Price: 101},
			},
			wantErr: ErrUnorderedSeries,
		},
		{
			name:  "decreasing timestamp",
			asset: "AAA",
			points: []PricePoint{
				{Time: day(1), Price: 100},
				{Time: day(0), Price: 101},
			},
			wantErr: ErrUnorderedSeries,
		},
		{
			name:  "NaN price",
			asset: "AAA",
			points: []PricePoint{
				{Time: day(0), Price: math.NaN()},
			},
			wantErr: ErrInvalidPrice,
		},
		{
			name:  "negative price is representable",
			asset: "AAA",
			points: []PricePoint{
				{Time: day(0), Price: -5},
				{Time: day(1), Price: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewAssetSeries(tt.asset, tt.points)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.asset, s.Name())
			assert.Equal(t, len(tt.points), s.Len())
		})
	}
}

func TestNewAssetSeries_RequiresName(t *testing.T) {
	_, err := NewAssetSeries("", []PricePoint{{Time: day(0), Price: 1}})
	assert.Error(t, err)
}

func TestAssetSeries_Immutable(t *testing.T) {
	points := []PricePoint{
		{Time: day(0), Price: 100},
		{Time: day(1), Price: 101},
	}
	s, err := NewAssetSeries("AAA", points)
	require.NoError(t, err)

	// Mutating the caller's slice must not affect the series.
	points[0].Price = -999
	assert.Equal(t, 100.0, s.Points()[0].Price)

	// Mutating the returned copy must not affect the series either.
	out := s.Points()
	out[1].Price = -999
	assert.Equal(t, 101.0, s.Points()[1].Price)
}
