package risk

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// RiskDecomposition breaks total portfolio volatility down by asset.
//
// Marginal is ∂σ/∂w_i = (wΣ)_i / σ, the sensitivity of total volatility to a
// small change in asset i's weight. Component is marginal_i * w_i and sums to
// Total; Percentage is component_i / Total and sums to 1. The sums only hold
// when the weights used here are the ones Total was computed from.
type RiskDecomposition struct {
	Assets     []string
	Marginal   []float64
	Component  []float64
	Percentage []float64
	Total      float64
}

// Decompose computes each asset's marginal and percentage contribution to the
// given total portfolio volatility.
//
// The total is a parameter rather than recomputed so callers can decompose
// against a volatility from a different (for example rolling) window than the
// covariance matrix. Window consistency between the two is the caller's
// responsibility. A zero total fails with ErrZeroVolatility.
func (c *Calculator) Decompose(
	weights []float64,
	cov *CovarianceMatrix,
	portfolioSd float64,
) (*RiskDecomposition, error) {
	n := cov.Size()
	if len(weights) != n {
		return nil, fmt.Errorf("%d weights for %d assets: %w", len(weights), n, ErrDimensionMismatch)
	}
	if n == 0 {
		return nil, fmt.Errorf("empty portfolio")
	}
	if portfolioSd == 0 {
		return nil, fmt.Errorf("cannot decompose: %w", ErrZeroVolatility)
	}
	if portfolioSd < 0 || math.IsNaN(portfolioSd) || math.IsInf(portfolioSd, 0) {
		return nil, fmt.Errorf("invalid portfolio volatility %g", portfolioSd)
	}

	w := mat.NewVecDense(n, nil)
	for i, v := range weights {
		w.SetVec(i, v)
	}

	// Exposure vector Σw: covariance of each asset with the portfolio.
	var exposure mat.VecDense
	exposure.MulVec(cov.sigma, w)

	d := &RiskDecomposition{
		Assets:     cov.Assets(),
		Marginal:   make([]float64, n),
		Component:  make([]float64, n),
		Percentage: make([]float64, n),
		Total:      portfolioSd,
	}
	for i := 0; i < n; i++ {
		d.Marginal[i] = exposure.AtVec(i) / portfolioSd
		d.Component[i] = d.Marginal[i] * weights[i]
		d.Percentage[i] = d.Component[i] / portfolioSd
	}

	c.log.Debug().
		Int("num_assets", n).
		Float64("portfolio_std_dev", portfolioSd).
		Msg("Decomposed portfolio risk")

	return d, nil
}
