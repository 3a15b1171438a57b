package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// weeklyBucketRange is the range length above which trend aggregation
// switches from daily to weekly buckets. Year-long ranges would otherwise
// produce hundreds of single-sample daily buckets.
const weeklyBucketRange = 60 * 24 * time.Hour

const bucketKeyFormat = "2006-01-02"

// AggregateTrend buckets the scan set by day or week depending on the
// requested range and computes per-bucket averages and sums. Buckets are
// created only for keys with at least one sample; empty input yields an
// empty bucket list, not an error.
func AggregateTrend(scans []*model.ScanSummary, start, end time.Time) *model.TrendReport {
	width := model.BucketDay
	if end.Sub(start) > weeklyBucketRange {
		width = model.BucketWeek
	}

	type accumulator struct {
		scoreSum    float64
		scoreCount  int
		issueSum    int
		sampleCount int
		metricSum   map[types.MetricName]float64
		metricCount map[types.MetricName]int
	}

	groups := make(map[string]*accumulator)
	for _, scan := range scans {
		key := bucketKey(scan.Timestamp, width)
		acc, ok := groups[key]
		if !ok {
			acc = &accumulator{
				metricSum:   make(map[types.MetricName]float64),
				metricCount: make(map[types.MetricName]int),
			}
			groups[key] = acc
		}
		acc.sampleCount++
		acc.issueSum += scan.IssueCount
		if score, ok := scan.Score(); ok {
			acc.scoreSum += score
			acc.scoreCount++
		}
		for name, v := range scan.SecondaryMetrics {
			acc.metricSum[name] += v
			acc.metricCount[name]++
		}
	}

	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	report := &model.TrendReport{
		BucketWidth: width,
		Buckets:     make([]model.TrendBucket, 0, len(keys)),
	}
	for _, key := range keys {
		acc := groups[key]
		bucket := model.TrendBucket{
			BucketKey:   key,
			TotalIssues: acc.issueSum,
			SampleCount: acc.sampleCount,
		}
		if acc.scoreCount > 0 {
			bucket.AverageScore = math.Round(acc.scoreSum / float64(acc.scoreCount))
		}
		if len(acc.metricSum) > 0 {
			bucket.SecondaryAverages = make(map[types.MetricName]float64, len(acc.metricSum))
			for name, sum := range acc.metricSum {
				bucket.SecondaryAverages[name] = sum / float64(acc.metricCount[name])
			}
		}
		report.Buckets = append(report.Buckets, bucket)
	}

	return report
}

// bucketKey returns the ISO date of the scan's day, or of the Sunday on or
// before the scan's date for weekly buckets
func bucketKey(ts time.Time, width model.BucketWidth) string {
	ts = ts.UTC()
	if width == model.BucketWeek {
		ts = ts.AddDate(0, 0, -int(ts.Weekday()))
	}
	return ts.Format(bucketKeyFormat)
}
