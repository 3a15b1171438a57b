package model

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// BenchmarkCohort is a static reference cohort (industry archetype)
type BenchmarkCohort struct {
	ID               types.CohortID               `json:"id"`
	Name             string                       `json:"name"`
	AverageScore     float64                      `json:"averageScore"`
	AverageIssues    float64                      `json:"averageIssues"`
	SecondaryMetrics map[types.MetricName]float64 `json:"secondaryMetrics,omitempty"`
}

// BenchmarkComparison places the caller's averaged metrics next to the
// reference cohorts. No statistical test is performed; this is a static
// side-by-side lookup.
type BenchmarkComparison struct {
	UserAverageScore  float64                      `json:"userAverageScore"`
	UserAverageIssues float64                      `json:"userAverageIssues"`
	UserSecondary     map[types.MetricName]float64 `json:"userSecondary,omitempty"`
	Cohorts           []BenchmarkCohort            `json:"cohorts"`
}

// EmptyBenchmarkComparison returns the defined zero-shape comparison,
// keeping the cohort table so presentation can still render references
func EmptyBenchmarkComparison(cohorts []BenchmarkCohort) *BenchmarkComparison {
	if cohorts == nil {
		cohorts = []BenchmarkCohort{}
	}
	return &BenchmarkComparison{Cohorts: cohorts}
}
