package analytics_test

import (
	"math"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/scanlight-hq/scanlight/pkg/service/analytics"
)

func TestCorrelate(t *testing.T) {
	t.Run("perfect positive correlation", func(t *testing.T) {
		result := analytics.Correlate(
			[]float64{1, 2, 3, 4, 5},
			[]float64{2, 4, 6, 8, 10},
		)
		gt.Equal(t, result.SampleSize, 5)
		gt.True(t, math.Abs(result.Coefficient-1.0) < 1e-9)
		gt.Equal(t, result.MeanA, 3.0)
		gt.Equal(t, result.MeanB, 6.0)
	})

	t.Run("perfect negative correlation", func(t *testing.T) {
		result := analytics.Correlate(
			[]float64{1, 2, 3},
			[]float64{6, 4, 2},
		)
		gt.True(t, math.Abs(result.Coefficient+1.0) < 1e-9)
	})

	t.Run("zero variance yields 0, not NaN", func(t *testing.T) {
		result := analytics.Correlate(
			[]float64{5, 5, 5},
			[]float64{1, 2, 3},
		)
		gt.Equal(t, result.Coefficient, 0.0)
		gt.False(t, math.IsNaN(result.Coefficient))
		gt.Equal(t, result.SampleSize, 3)
	})

	t.Run("fewer than 2 samples yields 0", func(t *testing.T) {
		result := analytics.Correlate([]float64{7}, []float64{3})
		gt.Equal(t, result.Coefficient, 0.0)
		gt.Equal(t, result.SampleSize, 1)
		gt.Equal(t, result.MeanA, 7.0)
	})

	t.Run("empty series yields well-defined zero result", func(t *testing.T) {
		result := analytics.Correlate(nil, nil)
		gt.Equal(t, result.Coefficient, 0.0)
		gt.Equal(t, result.SampleSize, 0)
	})

	t.Run("unequal lengths pair up to the shorter series", func(t *testing.T) {
		result := analytics.Correlate(
			[]float64{1, 2, 3, 4, 5, 6},
			[]float64{2, 4, 6},
		)
		gt.Equal(t, result.SampleSize, 3)
		gt.True(t, math.Abs(result.Coefficient-1.0) < 1e-9)
	})
}
