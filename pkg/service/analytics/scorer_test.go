package analytics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
	"github.com/scanlight-hq/scanlight/pkg/service/analytics"
)

func scanWithScore(id string, score float64) *model.ScanSummary {
	return &model.ScanSummary{
		ID:           types.ScanID(id),
		SiteID:       "site-1",
		Timestamp:    time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		OverallScore: &score,
	}
}

func testTemplate() *model.ComplianceTemplate {
	return &model.ComplianceTemplate{
		ID:           "test",
		Name:         "Test Standard",
		StandardName: "TEST",
		Version:      "1.0",
		Sections: []model.Section{
			{
				ID: "auto", Name: "Automated", Weight: 60,
				Criteria: []model.Criterion{
					{ID: "a1", Title: "A1", ConformanceLevel: types.ConformanceA, Principle: "perceivable", TestMethod: types.TestMethodAutomated},
					{ID: "a2", Title: "A2", ConformanceLevel: types.ConformanceA, Principle: "operable", TestMethod: types.TestMethodAutomated},
				},
			},
			{
				ID: "manual", Name: "Manual", Weight: 40,
				Criteria: []model.Criterion{
					{ID: "m1", Title: "M1", ConformanceLevel: types.ConformanceAA, Principle: "robust", TestMethod: types.TestMethodManual},
				},
			},
		},
	}
}

func TestScorer(t *testing.T) {
	scorer := analytics.NewScorer()

	t.Run("aggregate 75 passes automated but not manual", func(t *testing.T) {
		result := scorer.Score([]*model.ScanSummary{scanWithScore("s1", 75)}, testTemplate())

		// Automated section: both criteria pass (75 >= 70)
		gt.Equal(t, result.Sections[0].PassedCriteria, 2)
		gt.Equal(t, result.Sections[0].Score, 100.0)
		gt.Equal(t, result.Sections[0].CriticalIssueCount, 0)

		// Manual section: fails the stricter 80 bound
		gt.Equal(t, result.Sections[1].PassedCriteria, 0)
		gt.Equal(t, result.Sections[1].Score, 0.0)

		// Weighted mean: (100*60 + 0*40) / 100
		gt.Equal(t, result.OverallScore, 60.0)
	})

	t.Run("aggregate 85 passes everything with positive fallback", func(t *testing.T) {
		result := scorer.Score([]*model.ScanSummary{scanWithScore("s1", 85)}, testTemplate())
		gt.Equal(t, result.OverallScore, 100.0)
		gt.Equal(t, len(result.Recommendations), 1)
		gt.S(t, result.Recommendations[0]).Contains("Excellent")
	})

	t.Run("aggregate 40 counts critical issues on automated criteria", func(t *testing.T) {
		result := scorer.Score([]*model.ScanSummary{scanWithScore("s1", 40)}, testTemplate())
		gt.Equal(t, result.Sections[0].CriticalIssueCount, 2)
		gt.Equal(t, result.Sections[1].CriticalIssueCount, 0)
		gt.Equal(t, result.OverallScore, 0.0)

		var critical int
		for _, rec := range result.Recommendations {
			if strings.Contains(rec, "critical issues") {
				critical++
			}
		}
		gt.Equal(t, critical, 1)
	})

	t.Run("below-80 sections generate improvement recommendations", func(t *testing.T) {
		result := scorer.Score([]*model.ScanSummary{scanWithScore("s1", 75)}, testTemplate())
		var found bool
		for _, rec := range result.Recommendations {
			if strings.Contains(rec, "Improve Manual: 0/1 criteria met") {
				found = true
			}
		}
		gt.True(t, found)
	})

	t.Run("aggregate is the mean of non-nil scores", func(t *testing.T) {
		noScore := &model.ScanSummary{ID: "s3", SiteID: "site-1", Timestamp: time.Now()}
		result := scorer.Score([]*model.ScanSummary{
			scanWithScore("s1", 90), scanWithScore("s2", 70), noScore,
		}, testTemplate())
		// Mean is 80: passes both automated and manual bounds
		gt.Equal(t, result.OverallScore, 100.0)
		gt.Equal(t, result.SampleCount, 3)
	})

	t.Run("empty section trivially passes with 100", func(t *testing.T) {
		tmpl := testTemplate()
		tmpl.Sections = append(tmpl.Sections, model.Section{
			ID: "empty", Name: "Empty", Weight: 10,
		})
		result := scorer.Score([]*model.ScanSummary{scanWithScore("s1", 85)}, tmpl)
		gt.Equal(t, result.Sections[2].Score, 100.0)
		gt.Equal(t, result.OverallScore, 100.0)
	})

	t.Run("template with zero sections scores 0 with fallback message", func(t *testing.T) {
		tmpl := testTemplate()
		tmpl.Sections = nil
		result := scorer.Score([]*model.ScanSummary{scanWithScore("s1", 85)}, tmpl)
		gt.Equal(t, result.OverallScore, 0.0)
		gt.Equal(t, len(result.Recommendations), 1)
	})

	t.Run("overall score stays within 0 and 100", func(t *testing.T) {
		for _, score := range []float64{0, 25, 50, 75, 100} {
			result := scorer.Score([]*model.ScanSummary{scanWithScore("s", score)}, testTemplate())
			gt.True(t, result.OverallScore >= 0)
			gt.True(t, result.OverallScore <= 100)
		}
	})
}

func TestComplianceLevels(t *testing.T) {
	t.Run("wcag-style bands", func(t *testing.T) {
		tmpl := &model.ComplianceTemplate{
			ID: "w", Name: "W", StandardName: "WCAG 2.1",
			LevelBands: []model.LevelBand{
				{MinScore: 95, Label: "Full"},
				{MinScore: 80, Label: "Substantial"},
				{MinScore: 60, Label: "Partial"},
				{MinScore: 0, Label: "Non-Compliant"},
			},
		}
		gt.Equal(t, tmpl.ComplianceLevel(97), "Full")
		gt.Equal(t, tmpl.ComplianceLevel(80), "Substantial")
		gt.Equal(t, tmpl.ComplianceLevel(61), "Partial")
		gt.Equal(t, tmpl.ComplianceLevel(12), "Non-Compliant")
	})

	t.Run("default bands apply when template defines none", func(t *testing.T) {
		tmpl := &model.ComplianceTemplate{ID: "d", Name: "D"}
		gt.Equal(t, tmpl.ComplianceLevel(92), "Excellent")
		gt.Equal(t, tmpl.ComplianceLevel(75), "Good")
		gt.Equal(t, tmpl.ComplianceLevel(60), "Fair")
		gt.Equal(t, tmpl.ComplianceLevel(10), "Poor")
	})
}
