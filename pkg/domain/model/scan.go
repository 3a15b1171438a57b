package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// ImpactCounts holds violation counts per impact severity
type ImpactCounts struct {
	Critical int `json:"critical" firestore:"critical"`
	Serious  int `json:"serious" firestore:"serious"`
	Moderate int `json:"moderate" firestore:"moderate"`
	Minor    int `json:"minor" firestore:"minor"`
}

// Total returns the sum of all impact counts
func (c ImpactCounts) Total() int {
	return c.Critical + c.Serious + c.Moderate + c.Minor
}

// ScanSummary is the aggregate result of one completed accessibility scan
// of one page or site. Summaries are created once when a scan completes and
// are immutable afterwards; the analytics engine consumes them read-only.
type ScanSummary struct {
	ID        types.ScanID `json:"id" firestore:"id"`
	SiteID    types.SiteID `json:"siteId" firestore:"site_id"`
	Timestamp time.Time    `json:"timestamp" firestore:"timestamp"`

	// OverallScore is 0-100, nil when the scan produced no score
	OverallScore *float64 `json:"overallScore,omitempty" firestore:"overall_score"`

	IssueCount   int          `json:"issueCount" firestore:"issue_count"`
	ImpactCounts ImpactCounts `json:"impactCounts" firestore:"impact_counts"`

	// SecondaryMetrics is an open map of named numeric metrics
	// (performance score, SEO score, WCAG-AA percentage and so on).
	// A metric absent from the map means "not measured", not zero.
	SecondaryMetrics map[types.MetricName]float64 `json:"secondaryMetrics,omitempty" firestore:"secondary_metrics"`

	// RuleViolationCounts maps rule identifiers to occurrence counts
	RuleViolationCounts map[types.RuleID]int `json:"ruleViolationCounts,omitempty" firestore:"rule_violation_counts"`

	// RuleImpacts maps rule identifiers to their known impact severity,
	// when the scan engine reported one
	RuleImpacts map[types.RuleID]types.Impact `json:"ruleImpacts,omitempty" firestore:"rule_impacts"`

	// IsSynthetic marks demo/mock records. It is computed once at
	// ingestion by the normalizer; no downstream component re-inspects
	// the raw payload.
	IsSynthetic bool `json:"isSynthetic" firestore:"is_synthetic"`
}

// Validate validates the scan summary
func (s *ScanSummary) Validate() error {
	if s.ID == "" {
		return goerr.New("scan ID is required")
	}
	if s.SiteID == "" {
		return goerr.New("site ID is required")
	}
	if s.Timestamp.IsZero() {
		return goerr.New("timestamp is required")
	}
	if s.OverallScore != nil && (*s.OverallScore < 0 || *s.OverallScore > 100) {
		return goerr.New("overall score must be between 0 and 100",
			goerr.V("score", *s.OverallScore))
	}
	if s.IssueCount < 0 {
		return goerr.New("issue count must not be negative",
			goerr.V("issueCount", s.IssueCount))
	}
	return nil
}

// Score returns the overall score and whether it is present
func (s *ScanSummary) Score() (float64, bool) {
	if s.OverallScore == nil {
		return 0, false
	}
	return *s.OverallScore, true
}

// Metric returns the named secondary metric and whether it is present
func (s *ScanSummary) Metric(name types.MetricName) (float64, bool) {
	v, ok := s.SecondaryMetrics[name]
	return v, ok
}

// RawScanPayload is the heterogeneous payload produced by the scan engine.
// The normalizer turns it into a canonical ScanSummary; marker fields may be
// absent or malformed and absence always means "real data".
type RawScanPayload struct {
	ID        string    `json:"id"`
	SiteID    string    `json:"siteId"`
	Timestamp time.Time `json:"timestamp"`

	OverallScore *float64 `json:"overallScore,omitempty"`
	IssueCount   int      `json:"issueCount"`

	ImpactCounts     map[string]int     `json:"impactCounts,omitempty"`
	SecondaryMetrics map[string]float64 `json:"secondaryMetrics,omitempty"`

	Violations []RawViolation `json:"violations,omitempty"`

	// Synthetic-data markers. Any one of them marks the record as synthetic.
	IsDemo bool   `json:"isDemo,omitempty"`
	IsMock bool   `json:"isMock,omitempty"`
	Engine string `json:"engine,omitempty"`
}

// RawViolation is a single rule violation in a raw scan payload
type RawViolation struct {
	RuleID string `json:"ruleId"`
	Impact string `json:"impact,omitempty"`
	// AffectedElementCount is how many DOM nodes violated the rule
	AffectedElementCount int `json:"affectedElementCount"`
}
