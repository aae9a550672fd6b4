package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation of a slice of float64 values
func StdDev(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Variance calculates the sample variance of a slice of float64 values
func Variance(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Variance(data, nil)
}

// Covariance calculates the sample covariance between two datasets
func Covariance(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Covariance(x, y, nil)
}

// Correlation calculates the Pearson correlation coefficient between two datasets
func Correlation(x, y []float64) float64 {
	if len(x) == 0 || len(y) == 0 || len(x) != len(y) {
		return 0
	}
	return stat.Correlation(x, y, nil)
}

// AnnualizeStdDev scales a per-period standard deviation to an annual figure.
// Standard deviations scale with the square root of time:
//
//	annual = periodic * sqrt(periodsPerYear)
//
// Use 252 for daily observations, 12 for monthly, 52 for weekly.
func AnnualizeStdDev(periodic float64, periodsPerYear float64) float64 {
	if periodsPerYear <= 0 {
		return 0
	}
	return periodic * math.Sqrt(periodsPerYear)
}

// AnnualizeVariance scales a per-period variance to an annual figure.
// Variance-like quantities scale linearly with time.
func AnnualizeVariance(periodic float64, periodsPerYear float64) float64 {
	if periodsPerYear <= 0 {
		return 0
	}
	return periodic * periodsPerYear
}

// AnnualizedVolatility calculates annualized volatility from periodic returns.
// Formula: Std Dev of Periodic Returns × sqrt(periods per year)
func AnnualizedVolatility(returns []float64, periodsPerYear float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	return AnnualizeStdDev(StdDev(returns), periodsPerYear)
}
