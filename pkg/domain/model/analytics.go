package model

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// MetricGroup names one group of the analytics payload
type MetricGroup string

// Requestable metric groups
const (
	GroupOverview    MetricGroup = "overview"
	GroupTrends      MetricGroup = "trends"
	GroupIssues      MetricGroup = "issues"
	GroupPerformance MetricGroup = "performance"
	GroupCompliance  MetricGroup = "compliance"
	GroupRisk        MetricGroup = "risk"
	GroupBenchmarks  MetricGroup = "benchmarks"
)

// AllMetricGroups returns every requestable group
func AllMetricGroups() []MetricGroup {
	return []MetricGroup{
		GroupOverview, GroupTrends, GroupIssues, GroupPerformance,
		GroupCompliance, GroupRisk, GroupBenchmarks,
	}
}

// Overview is the headline aggregate of a scan set
type Overview struct {
	ScanCount    int          `json:"scanCount"`
	AverageScore float64      `json:"averageScore"`
	TotalIssues  int          `json:"totalIssues"`
	ImpactCounts ImpactCounts `json:"impactCounts"`
}

// PerformanceInsight pairs the accessibility score series against a
// secondary metric series and reports their correlation
type PerformanceInsight struct {
	Metric        types.MetricName   `json:"metric"`
	Correlation   *CorrelationResult `json:"correlation"`
	AverageA11y   float64            `json:"averageA11y"`
	AverageMetric float64            `json:"averageMetric"`
}

// AnalyticsReport is the single payload assembled for one analytics
// request. Every field is always present with a well-typed empty value;
// HasData is false when the normalizer filtered out every input record,
// so presentation layers never need per-field null checks.
type AnalyticsReport struct {
	HasData bool `json:"hasData"`

	Overview    *Overview            `json:"overview"`
	Trends      *TrendReport         `json:"trends"`
	Issues      []LeaderboardEntry   `json:"issues"`
	Performance *PerformanceInsight  `json:"performance"`
	Compliance  *ComplianceResult    `json:"compliance"`
	Risk        *RiskAssessment      `json:"risk"`
	Benchmarks  *BenchmarkComparison `json:"benchmarks"`
}

// EmptyAnalyticsReport returns the mandatory empty-but-well-typed payload
func EmptyAnalyticsReport(t *ComplianceTemplate, cohorts []BenchmarkCohort, width BucketWidth) *AnalyticsReport {
	return &AnalyticsReport{
		HasData:  false,
		Overview: &Overview{},
		Trends:   EmptyTrendReport(width),
		Issues:   []LeaderboardEntry{},
		Performance: &PerformanceInsight{
			Metric:      types.MetricPerformance,
			Correlation: &CorrelationResult{},
		},
		Compliance: EmptyComplianceResult(t),
		Risk:       EmptyRiskAssessment(),
		Benchmarks: EmptyBenchmarkComparison(cohorts),
	}
}
