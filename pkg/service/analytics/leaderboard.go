package analytics

import (
	"sort"

	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// DefaultLeaderboardSize is the top-k cutoff when the caller does not
// specify one
const DefaultLeaderboardSize = 10

// TopViolations sums rule violation counts across the scan set, ranks
// them by total count descending and returns the top k entries enriched
// with remediation hints. Ties are broken by impact priority when the
// impact is known for a rule; otherwise first-seen order is preserved
// (the sort is stable).
func TopViolations(scans []*model.ScanSummary, k int) []model.LeaderboardEntry {
	if k <= 0 {
		k = DefaultLeaderboardSize
	}

	totals := make(map[types.RuleID]int)
	impacts := make(map[types.RuleID]types.Impact)
	var order []types.RuleID

	for _, scan := range scans {
		for ruleID, count := range scan.RuleViolationCounts {
			if count <= 0 {
				continue
			}
			if _, seen := totals[ruleID]; !seen {
				order = append(order, ruleID)
			}
			totals[ruleID] += count
			if impact, ok := scan.RuleImpacts[ruleID]; ok {
				if prev, exists := impacts[ruleID]; !exists || impact.Priority() > prev.Priority() {
					impacts[ruleID] = impact
				}
			}
		}
	}

	// Rule counts come from map ranges, so pin a deterministic base
	// order before the ranking sort to keep results idempotent
	sort.SliceStable(order, func(i, j int) bool {
		return order[i] < order[j]
	})
	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if totals[a] != totals[b] {
			return totals[a] > totals[b]
		}
		return impacts[a].Priority() > impacts[b].Priority()
	})

	if len(order) > k {
		order = order[:k]
	}

	entries := make([]model.LeaderboardEntry, 0, len(order))
	for i, ruleID := range order {
		entries = append(entries, model.LeaderboardEntry{
			Rank:            i + 1,
			RuleID:          ruleID,
			OccurrenceCount: totals[ruleID],
			Impact:          impacts[ruleID],
			RemediationHint: RemediationHint(ruleID),
		})
	}

	return entries
}
