package risk

import (
	"math"
)

// CorrelationPair records a notable correlation between two assets.
type CorrelationPair struct {
	Asset1      string
	Asset2      string
	Correlation float64
}

// HighCorrelations extracts asset pairs whose absolute correlation meets the
// threshold, derived from the covariance matrix as
// cov(i,j) / sqrt(var(i) * var(j)). Pairs involving a zero-variance asset are
// skipped.
func (c *Calculator) HighCorrelations(cov *CovarianceMatrix, threshold float64) []CorrelationPair {
	n := cov.Size()
	assets := cov.Assets()

	pairs := make([]CorrelationPair, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			varI := cov.At(i, i)
			varJ := cov.At(j, j)
			if varI <= 0 || varJ <= 0 {
				continue
			}

			correlation := cov.At(i, j) / math.Sqrt(varI*varJ)
			if math.Abs(correlation) >= threshold {
				pairs = append(pairs, CorrelationPair{
					Asset1:      assets[i],
					Asset2:      assets[j],
					Correlation: correlation,
				})

				c.log.Debug().
					Str("asset1", assets[i]).
					Str("asset2", assets[j]).
					Float64("correlation", correlation).
					Msg("High correlation detected")
			}
		}
	}

	return pairs
}

// BuildCorrelationMap converts correlation pairs to a map keyed
// "ASSET1:ASSET2". Both orderings are stored for symmetric O(1) lookups.
func BuildCorrelationMap(pairs []CorrelationPair) map[string]float64 {
	correlationMap := make(map[string]float64, len(pairs)*2)

	for _, pair := range pairs {
		correlationMap[pair.Asset1+":"+pair.Asset2] = pair.Correlation
		correlationMap[pair.Asset2+":"+pair.Asset1] = pair.Correlation
	}

	return correlationMap
}
