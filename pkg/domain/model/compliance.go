package model

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// SectionResult is the score of one template section
type SectionResult struct {
	SectionID          types.SectionID `json:"sectionId"`
	Name               string          `json:"name"`
	Score              float64         `json:"score"`
	PassedCriteria     int             `json:"passedCriteria"`
	TotalCriteria      int             `json:"totalCriteria"`
	CriticalIssueCount int             `json:"criticalIssueCount"`
	Weight             float64         `json:"weight"`
}

// ComplianceResult is the outcome of scoring a scan set against one
// template. It is computed on demand and never persisted by the engine.
type ComplianceResult struct {
	TemplateID      types.TemplateID `json:"templateId"`
	StandardName    string           `json:"standardName"`
	Version         string           `json:"version"`
	OverallScore    float64          `json:"overallScore"`
	ComplianceLevel string           `json:"complianceLevel"`
	Sections        []SectionResult  `json:"sections"`
	Recommendations []string         `json:"recommendations"`
	SampleCount     int              `json:"sampleCount"`
}

// EmptyComplianceResult returns the defined zero-shape result for a
// template when no scan data is available
func EmptyComplianceResult(t *ComplianceTemplate) *ComplianceResult {
	if t == nil {
		return &ComplianceResult{
			Sections:        []SectionResult{},
			Recommendations: []string{},
		}
	}
	return &ComplianceResult{
		TemplateID:      t.ID,
		StandardName:    t.StandardName,
		Version:         t.Version,
		ComplianceLevel: t.ComplianceLevel(0),
		Sections:        []SectionResult{},
		Recommendations: []string{},
	}
}
