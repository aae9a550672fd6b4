package risk

import "errors"

var (
	// ErrInsufficientData indicates fewer than 2 return observations, so the
	// sample covariance is undefined.
	ErrInsufficientData = errors.New("insufficient return observations")

	// ErrDimensionMismatch indicates a weight vector whose length does not
	// match the covariance matrix size.
	ErrDimensionMismatch = errors.New("weights do not match covariance dimensions")

	// ErrInvalidWindow indicates a rolling window of 1 or less. The standard
	// deviation over a single observation is degenerate.
	ErrInvalidWindow = errors.New("rolling window must span at least 2 observations")

	// ErrZeroVolatility indicates an attempt to decompose risk for a
	// portfolio with zero volatility. The caller must special-case such
	// portfolios.
	ErrZeroVolatility = errors.New("portfolio volatility is zero")

	// ErrNegativeVariance indicates a negative w'Σw, which only happens when
	// the caller supplies a covariance matrix that is not positive
	// semi-definite.
	ErrNegativeVariance = errors.New("negative portfolio variance")
)
