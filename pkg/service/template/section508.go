package template

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// Section508Provider supplies the builtin Section 508 template. It has
// no standard-specific level bands, so the default mapping applies.
type Section508Provider struct{}

// Template returns the Section 508 template
func (Section508Provider) Template() (*model.ComplianceTemplate, error) {
	return &model.ComplianceTemplate{
		ID:           "section508",
		Name:         "Section 508",
		StandardName: "Section 508",
		Version:      "2018",
		Sections: []model.Section{
			{
				ID: "electronic-content", Name: "Electronic Content", Weight: 50,
				Criteria: []model.Criterion{
					{ID: "508-text-alt", Title: "Text Alternatives", ConformanceLevel: types.ConformanceA, Principle: "perceivable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "508-structure", Title: "Document Structure", ConformanceLevel: types.ConformanceA, Principle: "perceivable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "508-color", Title: "Use of Color", ConformanceLevel: types.ConformanceA, Principle: "perceivable", TestMethod: types.TestMethodHybrid, RequiredForCompliance: true},
				},
			},
			{
				ID: "functional-performance", Name: "Functional Performance", Weight: 50,
				Criteria: []model.Criterion{
					{ID: "508-vision", Title: "Use Without Vision", ConformanceLevel: types.ConformanceAA, Principle: "robust", TestMethod: types.TestMethodManual, RequiredForCompliance: true},
					{ID: "508-motor", Title: "Use With Limited Reach and Strength", ConformanceLevel: types.ConformanceAA, Principle: "operable", TestMethod: types.TestMethodManual, RequiredForCompliance: true},
					{ID: "508-keyboard", Title: "Keyboard Access", ConformanceLevel: types.ConformanceA, Principle: "operable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
				},
			},
		},
	}, nil
}
