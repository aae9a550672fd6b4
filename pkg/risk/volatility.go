package risk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/aristath/riskmetrics/pkg/timeseries"
)

// PortfolioStdDev computes the portfolio standard deviation sqrt(w'Σw).
//
// Weights are aligned positionally with the covariance axes and are expected
// to sum to 1; this is not enforced, but contribution sums in Decompose only
// reconcile against volatilities computed from normalized weights. A negative
// quadratic form fails with ErrNegativeVariance rather than returning NaN.
func (c *Calculator) PortfolioStdDev(weights []float64, cov *CovarianceMatrix) (float64, error) {
	if len(weights) != cov.Size() {
		return 0, fmt.Errorf("%d weights for %d assets: %w", len(weights), cov.Size(), ErrDimensionMismatch)
	}
	if len(weights) == 0 {
		return 0, fmt.Errorf("empty portfolio")
	}

	w := mat.NewVecDense(len(weights), nil)
	for i, v := range weights {
		w.SetVec(i, v)
	}

	variance := mat.Inner(w, cov.sigma, w)
	if variance < 0 {
		return 0, fmt.Errorf("w'Σw = %g: %w", variance, ErrNegativeVariance)
	}

	return math.Sqrt(variance), nil
}

// PortfolioReturns combines per-asset returns into a single weighted return
// series, one value per row of the matrix.
func PortfolioReturns(returns *timeseries.ReturnMatrix, weights []float64) ([]float64, error) {
	if len(weights) != returns.NumAssets() {
		return nil, fmt.Errorf("%d weights for %d assets: %w", len(weights), returns.NumAssets(), ErrDimensionMismatch)
	}

	out := make([]float64, returns.NumRows())
	for i := range out {
		total := 0.0
		for j, w := range weights {
			total += w * returns.At(i, j)
		}
		out[i] = total
	}
	return out, nil
}
