package analytics_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
	"github.com/scanlight-hq/scanlight/pkg/service/analytics"
)

func TestCompareBenchmarks(t *testing.T) {
	t.Run("averages user metrics next to cohorts", func(t *testing.T) {
		score1, score2 := 80.0, 60.0
		scans := []*model.ScanSummary{
			{
				ID: "s1", SiteID: "site-1", Timestamp: time.Now(),
				OverallScore: &score1, IssueCount: 10,
				SecondaryMetrics: map[types.MetricName]float64{types.MetricSEO: 90},
			},
			{
				ID: "s2", SiteID: "site-1", Timestamp: time.Now(),
				OverallScore: &score2, IssueCount: 20,
			},
		}
		comparison := analytics.CompareBenchmarks(scans)
		gt.Equal(t, comparison.UserAverageScore, 70.0)
		gt.Equal(t, comparison.UserAverageIssues, 15.0)
		gt.Equal(t, comparison.UserSecondary[types.MetricSEO], 90.0)
		gt.True(t, len(comparison.Cohorts) > 0)
	})

	t.Run("empty input keeps cohort table with zero user side", func(t *testing.T) {
		comparison := analytics.CompareBenchmarks(nil)
		gt.Equal(t, comparison.UserAverageScore, 0.0)
		gt.True(t, len(comparison.Cohorts) > 0)
	})

	t.Run("cohort table is copied, not shared", func(t *testing.T) {
		a := analytics.ReferenceCohorts()
		a[0].AverageScore = -1
		b := analytics.ReferenceCohorts()
		gt.True(t, b[0].AverageScore != -1)
	})
}
