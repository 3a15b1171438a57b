package analytics

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// syntheticEngineMarker is the engine name used by demo-data generators
const syntheticEngineMarker = "synthetic"

// Normalize turns a raw scan payload into a canonical ScanSummary.
// Synthetic detection happens exactly once here; malformed marker values
// default to "real". Malformed impact or metric values are treated as
// absent for that record rather than failing the whole payload.
func Normalize(raw *model.RawScanPayload) (*model.ScanSummary, error) {
	if raw == nil {
		return nil, goerr.New("raw scan payload is nil")
	}

	scan := &model.ScanSummary{
		ID:           types.ScanID(raw.ID),
		SiteID:       types.SiteID(raw.SiteID),
		Timestamp:    raw.Timestamp,
		OverallScore: raw.OverallScore,
		IssueCount:   raw.IssueCount,
		IsSynthetic:  isSynthetic(raw),
	}
	if scan.ID == "" {
		scan.ID = types.NewScanID()
	}
	if scan.Timestamp.IsZero() {
		scan.Timestamp = time.Now().UTC()
	}

	for name, count := range raw.ImpactCounts {
		if count < 0 {
			continue
		}
		switch types.Impact(strings.ToLower(name)) {
		case types.ImpactCritical:
			scan.ImpactCounts.Critical = count
		case types.ImpactSerious:
			scan.ImpactCounts.Serious = count
		case types.ImpactModerate:
			scan.ImpactCounts.Moderate = count
		case types.ImpactMinor:
			scan.ImpactCounts.Minor = count
		}
	}

	if len(raw.SecondaryMetrics) > 0 {
		scan.SecondaryMetrics = make(map[types.MetricName]float64, len(raw.SecondaryMetrics))
		for name, v := range raw.SecondaryMetrics {
			if name == "" {
				continue
			}
			scan.SecondaryMetrics[types.MetricName(name)] = v
		}
	}

	for _, v := range raw.Violations {
		if v.RuleID == "" {
			continue
		}
		ruleID := types.RuleID(v.RuleID)
		count := v.AffectedElementCount
		if count <= 0 {
			count = 1
		}
		if scan.RuleViolationCounts == nil {
			scan.RuleViolationCounts = make(map[types.RuleID]int)
		}
		scan.RuleViolationCounts[ruleID] += count

		impact := types.Impact(strings.ToLower(v.Impact))
		if impact.IsValid() {
			if scan.RuleImpacts == nil {
				scan.RuleImpacts = make(map[types.RuleID]types.Impact)
			}
			// Keep the highest-priority impact seen for the rule
			if prev, ok := scan.RuleImpacts[ruleID]; !ok || impact.Priority() > prev.Priority() {
				scan.RuleImpacts[ruleID] = impact
			}
		}
	}

	if err := scan.Validate(); err != nil {
		return nil, goerr.Wrap(err, "normalized scan failed validation",
			goerr.V("rawID", raw.ID))
	}

	return scan, nil
}

// isSynthetic reports whether any synthetic-data marker is set.
// Absence of every marker means "real".
func isSynthetic(raw *model.RawScanPayload) bool {
	if raw.IsDemo || raw.IsMock {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(raw.Engine), syntheticEngineMarker)
}

// FilterSynthetic returns the input scans minus synthetic records.
// It runs before every other computation in this package. The result is
// never nil so downstream aggregation always sees a well-defined slice.
func FilterSynthetic(scans []*model.ScanSummary) []*model.ScanSummary {
	filtered := make([]*model.ScanSummary, 0, len(scans))
	for _, s := range scans {
		if s == nil || s.IsSynthetic {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}
