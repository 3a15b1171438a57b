package model

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// BucketWidth is the time resolution of a trend report
type BucketWidth string

// Supported bucket widths
const (
	BucketDay  BucketWidth = "day"
	BucketWeek BucketWidth = "week"
)

// String returns the string representation
func (w BucketWidth) String() string {
	return string(w)
}

// TrendBucket aggregates the scan summaries whose timestamp falls in one
// day or one week. Buckets exist only for keys with at least one sample.
type TrendBucket struct {
	// BucketKey is the ISO date of the day, or of the week's Sunday start
	BucketKey    string  `json:"bucketKey"`
	AverageScore float64 `json:"averageScore"`
	TotalIssues  int     `json:"totalIssues"`
	SampleCount  int     `json:"sampleCount"`

	// SecondaryAverages holds the mean of each secondary metric over the
	// samples where it is present. A metric absent from every sample in
	// the bucket is absent from the map, distinguishing "no data" from
	// "zero value".
	SecondaryAverages map[types.MetricName]float64 `json:"secondaryAverages,omitempty"`
}

// TrendReport is the time-bucketed history of a scan series
type TrendReport struct {
	BucketWidth BucketWidth   `json:"bucketWidth"`
	Buckets     []TrendBucket `json:"buckets"`
}

// EmptyTrendReport returns the defined zero-shape trend report
func EmptyTrendReport(width BucketWidth) *TrendReport {
	return &TrendReport{
		BucketWidth: width,
		Buckets:     []TrendBucket{},
	}
}
