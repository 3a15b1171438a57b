package analytics

import (
	"fmt"
	"math"

	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// criterionThresholds holds the pass/fail bounds for one test method
type criterionThresholds struct {
	// PassScore is the minimum aggregate score for the criterion to pass
	PassScore float64
	// CriticalScore is the bound below which the criterion counts as a
	// critical issue for its section
	CriticalScore float64
}

// ScorerConfig holds the policy thresholds for compliance scoring.
// The values are configuration defaults observed in reference behavior,
// not physical constants.
type ScorerConfig struct {
	Thresholds map[types.TestMethod]criterionThresholds

	// RecommendationScore is the section score below which an
	// improvement recommendation is generated
	RecommendationScore float64
}

// DefaultScorerConfig returns the default scoring thresholds.
// Manual and hybrid criteria pass only at a stricter bound because
// automated scan data alone cannot certify them.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		Thresholds: map[types.TestMethod]criterionThresholds{
			types.TestMethodAutomated: {PassScore: 70, CriticalScore: 50},
			types.TestMethodManual:    {PassScore: 80, CriticalScore: 50},
			types.TestMethodHybrid:    {PassScore: 80, CriticalScore: 50},
		},
		RecommendationScore: 80,
	}
}

// Scorer evaluates scan sets against compliance templates
type Scorer struct {
	cfg ScorerConfig
}

// NewScorer creates a scorer with the default thresholds
func NewScorer() *Scorer {
	return &Scorer{cfg: DefaultScorerConfig()}
}

// NewScorerWithConfig creates a scorer with custom thresholds
func NewScorerWithConfig(cfg ScorerConfig) *Scorer {
	if cfg.Thresholds == nil {
		cfg = DefaultScorerConfig()
	}
	return &Scorer{cfg: cfg}
}

// Score evaluates the scan set against the template and returns a
// compliance result. Synthetic records must already be filtered out by
// the caller; the scorer is a pure function of its inputs.
func (s *Scorer) Score(scans []*model.ScanSummary, template *model.ComplianceTemplate) *model.ComplianceResult {
	aggregate, _ := aggregateScore(scans)

	result := &model.ComplianceResult{
		TemplateID:      template.ID,
		StandardName:    template.StandardName,
		Version:         template.Version,
		Sections:        make([]model.SectionResult, 0, len(template.Sections)),
		Recommendations: []string{},
		SampleCount:     len(scans),
	}

	var weightedSum, totalWeight float64
	for _, section := range template.Sections {
		sr := s.scoreSection(aggregate, &section)
		result.Sections = append(result.Sections, sr)
		weightedSum += sr.Score * section.Weight
		totalWeight += section.Weight

		if sr.Score < s.cfg.RecommendationScore {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Improve %s: %d/%d criteria met",
					section.Name, sr.PassedCriteria, sr.TotalCriteria))
		}
		if sr.CriticalIssueCount > 0 {
			result.Recommendations = append(result.Recommendations,
				fmt.Sprintf("Address %d critical issues in %s",
					sr.CriticalIssueCount, section.Name))
		}
	}

	if totalWeight > 0 {
		result.OverallScore = clampScore(weightedSum / totalWeight)
	}
	result.ComplianceLevel = template.ComplianceLevel(result.OverallScore)

	if len(result.Recommendations) == 0 {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Excellent work! Your site meets %s requirements.", template.StandardName))
	}

	return result
}

// scoreSection evaluates every criterion of a section against the
// aggregate score. An empty section trivially passes with score 100.
func (s *Scorer) scoreSection(aggregate float64, section *model.Section) model.SectionResult {
	sr := model.SectionResult{
		SectionID:     section.ID,
		Name:          section.Name,
		TotalCriteria: len(section.Criteria),
		Weight:        section.Weight,
	}

	if sr.TotalCriteria == 0 {
		sr.Score = 100
		return sr
	}

	for _, criterion := range section.Criteria {
		thresholds, ok := s.cfg.Thresholds[criterion.TestMethod]
		if !ok {
			// Unknown test methods fall back to the strict manual bound
			thresholds = s.cfg.Thresholds[types.TestMethodManual]
		}
		if aggregate >= thresholds.PassScore {
			sr.PassedCriteria++
		}
		if criterion.TestMethod == types.TestMethodAutomated && aggregate < thresholds.CriticalScore {
			sr.CriticalIssueCount++
		}
	}

	sr.Score = 100 * float64(sr.PassedCriteria) / float64(sr.TotalCriteria)
	return sr
}

// aggregateScore returns the mean of non-nil overall scores and whether
// any score was present
func aggregateScore(scans []*model.ScanSummary) (float64, bool) {
	var sum float64
	var n int
	for _, scan := range scans {
		if score, ok := scan.Score(); ok {
			sum += score
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// clampScore bounds a score to [0, 100]
func clampScore(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
