package analytics_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
	"github.com/scanlight-hq/scanlight/pkg/service/analytics"
)

func leaderboardScan(counts map[types.RuleID]int, impacts map[types.RuleID]types.Impact) *model.ScanSummary {
	return &model.ScanSummary{
		ID:                  types.NewScanID(),
		SiteID:              "site-1",
		Timestamp:           time.Now(),
		RuleViolationCounts: counts,
		RuleImpacts:         impacts,
	}
}

func TestTopViolations(t *testing.T) {
	t.Run("sums counts across scans and ranks descending", func(t *testing.T) {
		scans := []*model.ScanSummary{
			leaderboardScan(map[types.RuleID]int{"image-alt": 3, "link-name": 1}, nil),
			leaderboardScan(map[types.RuleID]int{"image-alt": 2, "color-contrast": 4}, nil),
		}
		entries := analytics.TopViolations(scans, 10)
		gt.Equal(t, len(entries), 3)
		gt.Equal(t, entries[0].RuleID, types.RuleID("image-alt"))
		gt.Equal(t, entries[0].OccurrenceCount, 5)
		gt.Equal(t, entries[0].Rank, 1)
		gt.Equal(t, entries[1].RuleID, types.RuleID("color-contrast"))
		gt.Equal(t, entries[2].RuleID, types.RuleID("link-name"))
	})

	t.Run("top-k truncation", func(t *testing.T) {
		scans := []*model.ScanSummary{
			leaderboardScan(map[types.RuleID]int{"a": 5, "b": 5, "c": 10}, nil),
		}
		entries := analytics.TopViolations(scans, 2)
		gt.Equal(t, len(entries), 2)
		gt.Equal(t, entries[0].RuleID, types.RuleID("c"))
		// A or B in stable order; totals never exceed the true sum
		total := entries[0].OccurrenceCount + entries[1].OccurrenceCount
		gt.Equal(t, total, 15)
	})

	t.Run("ties broken by impact priority", func(t *testing.T) {
		scans := []*model.ScanSummary{
			leaderboardScan(
				map[types.RuleID]int{"minor-rule": 5, "critical-rule": 5},
				map[types.RuleID]types.Impact{
					"minor-rule":    types.ImpactMinor,
					"critical-rule": types.ImpactCritical,
				},
			),
		}
		entries := analytics.TopViolations(scans, 10)
		gt.Equal(t, entries[0].RuleID, types.RuleID("critical-rule"))
		gt.Equal(t, entries[0].Impact, types.ImpactCritical)
	})

	t.Run("unknown impacts keep deterministic stable order", func(t *testing.T) {
		scans := []*model.ScanSummary{
			leaderboardScan(map[types.RuleID]int{"zeta": 5, "alpha": 5}, nil),
		}
		first := analytics.TopViolations(scans, 10)
		for i := 0; i < 20; i++ {
			again := analytics.TopViolations(scans, 10)
			gt.Equal(t, again[0].RuleID, first[0].RuleID)
			gt.Equal(t, again[1].RuleID, first[1].RuleID)
		}
	})

	t.Run("mapped rules get their remediation hint", func(t *testing.T) {
		scans := []*model.ScanSummary{
			leaderboardScan(map[types.RuleID]int{"image-alt": 1}, nil),
		}
		entries := analytics.TopViolations(scans, 10)
		gt.S(t, entries[0].RemediationHint).Contains("alt text")
	})

	t.Run("unmapped rules get the generic hint, never empty", func(t *testing.T) {
		scans := []*model.ScanSummary{
			leaderboardScan(map[types.RuleID]int{"custom-rule-42": 1}, nil),
		}
		entries := analytics.TopViolations(scans, 10)
		gt.True(t, entries[0].RemediationHint != "")
		gt.S(t, entries[0].RemediationHint).Contains("rule documentation")
	})

	t.Run("non-positive k falls back to default size", func(t *testing.T) {
		counts := make(map[types.RuleID]int)
		for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
			counts[types.RuleID(id)] = 1
		}
		entries := analytics.TopViolations([]*model.ScanSummary{leaderboardScan(counts, nil)}, 0)
		gt.Equal(t, len(entries), analytics.DefaultLeaderboardSize)
	})

	t.Run("empty input yields empty leaderboard", func(t *testing.T) {
		entries := analytics.TopViolations(nil, 10)
		gt.NotNil(t, entries)
		gt.Equal(t, len(entries), 0)
	})
}
