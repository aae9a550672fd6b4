package risk

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/aristath/riskmetrics/pkg/formulas"
	"github.com/aristath/riskmetrics/pkg/timeseries"
)

// CovarianceMatrix is a symmetric table of pairwise sample covariances with
// named axes. Diagonal entries are asset variances. Values are per-period;
// annualization is the caller's responsibility (see pkg/formulas).
type CovarianceMatrix struct {
	assets []string
	sigma  *mat.SymDense
}

// NewCovarianceMatrix builds a covariance matrix from caller-supplied values.
// The table must be square with one row per asset; the upper triangle is
// used, so symmetry holds by construction.
func NewCovarianceMatrix(assets []string, values [][]float64) (*CovarianceMatrix, error) {
	n := len(assets)
	if len(values) != n {
		return nil, fmt.Errorf("covariance table has %d rows for %d assets", len(values), n)
	}
	for i, row := range values {
		if len(row) != n {
			return nil, fmt.Errorf("covariance row %d has %d values, expected %d", i, len(row), n)
		}
	}

	names := make([]string, n)
	copy(names, assets)
	if n == 0 {
		return &CovarianceMatrix{assets: names}, nil
	}

	sigma := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sigma.SetSym(i, j, values[i][j])
		}
	}

	return &CovarianceMatrix{assets: names, sigma: sigma}, nil
}

// Size returns the number of assets (the matrix is Size x Size).
func (c *CovarianceMatrix) Size() int { return len(c.assets) }

// Assets returns a copy of the asset identifiers in axis order.
func (c *CovarianceMatrix) Assets() []string {
	out := make([]string, len(c.assets))
	copy(out, c.assets)
	return out
}

// At returns the covariance between assets i and j.
func (c *CovarianceMatrix) At(i, j int) float64 { return c.sigma.At(i, j) }

// Values returns a copy of the full table.
func (c *CovarianceMatrix) Values() [][]float64 {
	n := len(c.assets)
	out := make([][]float64, n)
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			out[i][j] = c.sigma.At(i, j)
		}
	}
	return out
}

// Covariance computes the unbiased (N-1 denominator) sample covariance matrix
// of a return matrix. Fails with ErrInsufficientData when fewer than 2 return
// rows are available.
func (c *Calculator) Covariance(returns *timeseries.ReturnMatrix) (*CovarianceMatrix, error) {
	if returns.NumAssets() == 0 {
		return nil, fmt.Errorf("return matrix has no assets")
	}
	if returns.NumRows() < 2 {
		return nil, fmt.Errorf("%d return rows: %w", returns.NumRows(), ErrInsufficientData)
	}

	n := returns.NumAssets()
	cols := make([][]float64, n)
	for j := 0; j < n; j++ {
		cols[j] = returns.Column(j)
	}

	sigma := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sigma.SetSym(i, j, formulas.Covariance(cols[i], cols[j]))
		}
	}

	c.log.Debug().
		Int("num_assets", n).
		Int("num_rows", returns.NumRows()).
		Msg("Computed sample covariance matrix")

	return &CovarianceMatrix{assets: returns.Assets(), sigma: sigma}, nil
}
