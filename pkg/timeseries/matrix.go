package timeseries

import (
	"fmt"
	"time"
)

// ReturnMatrix is an immutable table of periodic returns: rows are shared
// timestamps, columns are assets in the order they were supplied. Every cell
// is populated; alignment happens before construction.
type ReturnMatrix struct {
	times  []time.Time
	assets []string
	data   [][]float64 // row-major, one row per timestamp
}

// NewReturnMatrix builds a matrix from pre-computed returns. Row count must
// match the timestamp count and every row must have one value per asset.
// Inputs are copied.
func NewReturnMatrix(times []time.Time, assets []string, data [][]float64) (*ReturnMatrix, error) {
	if len(data) != len(times) {
		return nil, fmt.Errorf("row count %d does not match timestamp count %d", len(data), len(times))
	}
	for i, row := range data {
		if len(row) != len(assets) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i, len(row), len(assets))
		}
	}

	t := make([]time.Time, len(times))
	copy(t, times)
	a := make([]string, len(assets))
	copy(a, assets)
	d := make([][]float64, len(data))
	for i, row := range data {
		d[i] = make([]float64, len(row))
		copy(d[i], row)
	}

	return &ReturnMatrix{times: t, assets: a, data: d}, nil
}

// NumRows returns the number of return observations.
func (m *ReturnMatrix) NumRows() int { return len(m.times) }

// NumAssets returns the number of asset columns.
func (m *ReturnMatrix) NumAssets() int { return len(m.assets) }

// Assets returns a copy of the asset identifiers in column order.
func (m *ReturnMatrix) Assets() []string {
	out := make([]string, len(m.assets))
	copy(out, m.assets)
	return out
}

// Timestamps returns a copy of the row timestamps in ascending order.
func (m *ReturnMatrix) Timestamps() []time.Time {
	out := make([]time.Time, len(m.times))
	copy(out, m.times)
	return out
}

// At returns the return for the given row and asset column.
func (m *ReturnMatrix) At(row, col int) float64 { return m.data[row][col] }

// Timestamp returns the timestamp of the given row.
func (m *ReturnMatrix) Timestamp(row int) time.Time { return m.times[row] }

// Row returns a copy of one observation across all assets.
func (m *ReturnMatrix) Row(row int) []float64 {
	out := make([]float64, len(m.data[row]))
	copy(out, m.data[row])
	return out
}

// Column returns a copy of one asset's return series.
func (m *ReturnMatrix) Column(col int) []float64 {
	out := make([]float64, len(m.data))
	for i, row := range m.data {
		out[i] = row[col]
	}
	return out
}

// Window returns a view over rows [start, start+length). The view shares the
// backing arrays, which is safe because the matrix has no mutators.
func (m *ReturnMatrix) Window(start, length int) *ReturnMatrix {
	return &ReturnMatrix{
		times:  m.times[start : start+length],
		assets: m.assets,
		data:   m.data[start : start+length],
	}
}
