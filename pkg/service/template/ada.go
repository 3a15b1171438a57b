package template

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// ADAProvider supplies the builtin ADA Title III risk template. Its
// compliance levels are litigation-risk bands rather than conformance
// grades.
type ADAProvider struct{}

// Template returns the ADA risk template
func (ADAProvider) Template() (*model.ComplianceTemplate, error) {
	return &model.ComplianceTemplate{
		ID:           "ada-title3",
		Name:         "ADA Title III Risk Profile",
		StandardName: "ADA",
		Version:      "2010",
		LevelBands: []model.LevelBand{
			{MinScore: 90, Label: "Low Risk"},
			{MinScore: 70, Label: "Medium Risk"},
			{MinScore: 50, Label: "High Risk"},
			{MinScore: 0, Label: "Critical Risk"},
		},
		Sections: []model.Section{
			{
				ID: "effective-communication", Name: "Effective Communication", Weight: 40,
				Criteria: []model.Criterion{
					{ID: "ada-alt", Title: "Alternative Text Coverage", ConformanceLevel: types.ConformanceA, Principle: "perceivable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "ada-captions", Title: "Multimedia Captioning", ConformanceLevel: types.ConformanceA, Principle: "perceivable", TestMethod: types.TestMethodManual, RequiredForCompliance: true},
					{ID: "ada-contrast", Title: "Visual Contrast", ConformanceLevel: types.ConformanceAA, Principle: "perceivable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
				},
			},
			{
				ID: "full-access", Name: "Full and Equal Access", Weight: 40,
				Criteria: []model.Criterion{
					{ID: "ada-keyboard", Title: "Keyboard Operability", ConformanceLevel: types.ConformanceA, Principle: "operable", TestMethod: types.TestMethodHybrid, RequiredForCompliance: true},
					{ID: "ada-forms", Title: "Form Accessibility", ConformanceLevel: types.ConformanceA, Principle: "understandable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "ada-navigation", Title: "Navigable Structure", ConformanceLevel: types.ConformanceA, Principle: "operable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
				},
			},
			{
				ID: "assistive-tech", Name: "Assistive Technology Support", Weight: 20,
				Criteria: []model.Criterion{
					{ID: "ada-aria", Title: "ARIA Semantics", ConformanceLevel: types.ConformanceA, Principle: "robust", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "ada-screenreader", Title: "Screen Reader Compatibility", ConformanceLevel: types.ConformanceAA, Principle: "robust", TestMethod: types.TestMethodManual, RequiredForCompliance: false},
				},
			},
		},
	}, nil
}
