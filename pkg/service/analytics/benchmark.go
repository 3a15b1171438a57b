package analytics

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// referenceCohorts is the static table of industry archetypes used for
// benchmark comparison. Values are reference figures, not live data.
var referenceCohorts = []model.BenchmarkCohort{
	{
		ID: "ecommerce", Name: "E-commerce",
		AverageScore: 72, AverageIssues: 34,
		SecondaryMetrics: map[types.MetricName]float64{
			types.MetricPerformance: 68,
			types.MetricSEO:         81,
		},
	},
	{
		ID: "government", Name: "Government",
		AverageScore: 84, AverageIssues: 18,
		SecondaryMetrics: map[types.MetricName]float64{
			types.MetricPerformance: 74,
			types.MetricSEO:         77,
		},
	},
	{
		ID: "education", Name: "Education",
		AverageScore: 78, AverageIssues: 25,
		SecondaryMetrics: map[types.MetricName]float64{
			types.MetricPerformance: 70,
			types.MetricSEO:         75,
		},
	},
	{
		ID: "media", Name: "News & Media",
		AverageScore: 65, AverageIssues: 47,
		SecondaryMetrics: map[types.MetricName]float64{
			types.MetricPerformance: 58,
			types.MetricSEO:         86,
		},
	},
	{
		ID: "saas", Name: "SaaS",
		AverageScore: 75, AverageIssues: 29,
		SecondaryMetrics: map[types.MetricName]float64{
			types.MetricPerformance: 76,
			types.MetricSEO:         79,
		},
	},
}

// ReferenceCohorts returns the static cohort table
func ReferenceCohorts() []model.BenchmarkCohort {
	cohorts := make([]model.BenchmarkCohort, len(referenceCohorts))
	copy(cohorts, referenceCohorts)
	return cohorts
}

// CompareBenchmarks averages the caller's metrics and places them next to
// the reference cohorts. No statistical test is performed.
func CompareBenchmarks(scans []*model.ScanSummary) *model.BenchmarkComparison {
	comparison := model.EmptyBenchmarkComparison(ReferenceCohorts())
	if len(scans) == 0 {
		return comparison
	}

	var issueSum int
	metricSum := make(map[types.MetricName]float64)
	metricCount := make(map[types.MetricName]int)
	for _, scan := range scans {
		issueSum += scan.IssueCount
		for name, v := range scan.SecondaryMetrics {
			metricSum[name] += v
			metricCount[name]++
		}
	}

	comparison.UserAverageScore = meanScore(scans)
	comparison.UserAverageIssues = float64(issueSum) / float64(len(scans))
	if len(metricSum) > 0 {
		comparison.UserSecondary = make(map[types.MetricName]float64, len(metricSum))
		for name, sum := range metricSum {
			comparison.UserSecondary[name] = sum / float64(metricCount[name])
		}
	}

	return comparison
}
