package analytics

import (
	"math"

	"github.com/scanlight-hq/scanlight/pkg/domain/model"
)

// Correlate computes the Pearson product-moment correlation between two
// equal-length, index-aligned series. Degenerate inputs (fewer than 2
// samples, unequal lengths, zero variance in either series) yield a
// coefficient of 0 rather than NaN; this is a defined contract.
func Correlate(seriesA, seriesB []float64) *model.CorrelationResult {
	n := len(seriesA)
	if len(seriesB) < n {
		n = len(seriesB)
	}

	result := &model.CorrelationResult{SampleSize: n}
	if n == 0 {
		return result
	}

	var sumA, sumB, sumAB, sumA2, sumB2 float64
	for i := 0; i < n; i++ {
		a, b := seriesA[i], seriesB[i]
		sumA += a
		sumB += b
		sumAB += a * b
		sumA2 += a * a
		sumB2 += b * b
	}

	fn := float64(n)
	result.MeanA = sumA / fn
	result.MeanB = sumB / fn

	if n < 2 {
		return result
	}

	numerator := fn*sumAB - sumA*sumB
	denominator := math.Sqrt((fn*sumA2 - sumA*sumA) * (fn*sumB2 - sumB*sumB))
	if denominator == 0 {
		return result
	}

	result.Coefficient = numerator / denominator
	return result
}
