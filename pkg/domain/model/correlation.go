package model

// CorrelationResult holds the Pearson correlation between two aligned
// numeric series. Coefficient is 0 (not NaN) for fewer than 2 samples or
// when either series has zero variance. Callers should treat results with
// SampleSize < 3 as not meaningfully interpretable.
type CorrelationResult struct {
	Coefficient float64 `json:"coefficient"`
	SampleSize  int     `json:"sampleSize"`
	MeanA       float64 `json:"meanA"`
	MeanB       float64 `json:"meanB"`
}
