package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/riskmetrics/pkg/timeseries"
)

func TestDecompose_SumsToTotal(t *testing.T) {
	m := returnMatrix(t, []string{"A", "B", "C"}, [][]float64{
		{0.011, -0.004, 0.021, 0.002, -0.013, 0.008},
		{-0.002, 0.015, -0.007, 0.012, 0.001, -0.009},
		{0.005, 0.003, -0.001, 0.004, 0.006, 0.002},
	})
	weights := []float64{0.5, 0.3, 0.2}

	calc := testCalculator()
	cov, err := calc.Covariance(m)
	require.NoError(t, err)
	sd, err := calc.PortfolioStdDev(weights, cov)
	require.NoError(t, err)
	require.Greater(t, sd, 0.0)

	d, err := calc.Decompose(weights, cov, sd)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, d.Assets)
	assert.Equal(t, sd, d.Total)

	var componentSum, percentageSum float64
	for i := range weights {
		assert.InEpsilon(t, d.Marginal[i]*weights[i], d.Component[i], 1e-12)
		componentSum += d.Component[i]
		percentageSum += d.Percentage[i]
	}
	assert.InEpsilon(t, sd, componentSum, 1e-9, "component contributions must sum to total volatility")
	assert.InDelta(t, 1.0, percentageSum, 1e-9, "percentage contributions must sum to 1")
}

func TestDecompose_MonthlyPriceScenario(t *testing.T) {
	// Three assets with four monthly prices each; log returns, weights
	// 0.5/0.3/0.2. The portfolio volatility must be finite and non-negative
	// and the percentage contributions must sum to 1.
	newSeries := func(name string, prices []float64) timeseries.AssetSeries {
		points := make([]timeseries.PricePoint, len(prices))
		for i, p := range prices {
			points[i] = timeseries.PricePoint{Time: day(i * 30), Price: p}
		}
		s, err := timeseries.NewAssetSeries(name, points)
		require.NoError(t, err)
		return s
	}

	series := []timeseries.AssetSeries{
		newSeries("A", []float64{100, 102, 101, 105}),
		newSeries("B", []float64{50, 49, 51, 50}),
		newSeries("C", []float64{10, 10.5, 10.4, 10.6}),
	}
	weights := []float64{0.5, 0.3, 0.2}

	m, err := timeseries.BuildReturns(series, timeseries.Log)
	require.NoError(t, err)
	require.Equal(t, 3, m.NumRows())

	calc := testCalculator()
	cov, err := calc.Covariance(m)
	require.NoError(t, err)

	sd, err := calc.PortfolioStdDev(weights, cov)
	require.NoError(t, err)
	require.False(t, math.IsNaN(sd))
	require.False(t, math.IsInf(sd, 0))
	require.GreaterOrEqual(t, sd, 0.0)

	d, err := calc.Decompose(weights, cov, sd)
	require.NoError(t, err)

	var percentageSum float64
	for _, p := range d.Percentage {
		percentageSum += p
	}
	assert.InDelta(t, 1.0, percentageSum, 1e-9)
}

func TestDecompose_SingleAssetPortfolio(t *testing.T) {
	m := returnMatrix(t, []string{"A"}, [][]float64{
		{0.01, -0.02, 0.015, 0.005, -0.01, 0.02},
	})
	weights := []float64{1.0}

	calc := testCalculator()
	cov, err := calc.Covariance(m)
	require.NoError(t, err)
	sd, err := calc.PortfolioStdDev(weights, cov)
	require.NoError(t, err)

	d, err := calc.Decompose(weights, cov, sd)
	require.NoError(t, err)

	assert.InEpsilon(t, 1.0, d.Percentage[0], 1e-9)
	assert.InEpsilon(t, sd, d.Component[0], 1e-9)
	assert.InEpsilon(t, sd, d.Marginal[0], 1e-9)
}

func TestDecompose_ZeroVolatility(t *testing.T) {
	cov, err := NewCovarianceMatrix([]string{"A"}, [][]float64{{0}})
	require.NoError(t, err)

	_, err = testCalculator().Decompose([]float64{1.0}, cov, 0)
	assert.ErrorIs(t, err, ErrZeroVolatility)
}

func TestDecompose_InvalidInputs(t *testing.T) {
	cov, err := NewCovarianceMatrix([]string{"A", "B"}, [][]float64{
		{0.04, 0.01},
		{0.01, 0.03},
	})
	require.NoError(t, err)

	_, err = testCalculator().Decompose([]float64{1.0}, cov, 0.1)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = testCalculator().Decompose([]float64{0.5, 0.5}, cov, -0.1)
	assert.Error(t, err)

	_, err = testCalculator().Decompose([]float64{0.5, 0.5}, cov, math.NaN())
	assert.Error(t, err)
}

func TestDecompose_AcceptsExternallyComputedVolatility(t *testing.T) {
	// The total is a parameter: decomposing against a volatility from a
	// different window scales contributions but keeps the marginal ordering.
	cov, err := NewCovarianceMatrix([]string{"A", "B"}, [][]float64{
		{0.04, 0.01},
		{0.01, 0.03},
	})
	require.NoError(t, err)
	weights := []float64{0.5, 0.5}

	calc := testCalculator()
	own, err := calc.PortfolioStdDev(weights, cov)
	require.NoError(t, err)

	d, err := calc.Decompose(weights, cov, own*2)
	require.NoError(t, err)

	// Against a doubled total, component contributions sum to half of it.
	var componentSum float64
	for _, c := range d.Component {
		componentSum += c
	}
	assert.InEpsilon(t, own/2, componentSum, 1e-9)
}
