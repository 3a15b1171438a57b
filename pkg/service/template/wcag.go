package template

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// WCAG21Provider supplies the builtin WCAG 2.1 Level AA template
type WCAG21Provider struct{}

// Template returns the WCAG 2.1 AA template
func (WCAG21Provider) Template() (*model.ComplianceTemplate, error) {
	return &model.ComplianceTemplate{
		ID:           "wcag21-aa",
		Name:         "WCAG 2.1 Level AA",
		StandardName: "WCAG 2.1",
		Version:      "2.1",
		LevelBands: []model.LevelBand{
			{MinScore: 95, Label: "Full"},
			{MinScore: 80, Label: "Substantial"},
			{MinScore: 60, Label: "Partial"},
			{MinScore: 0, Label: "Non-Compliant"},
		},
		Sections: []model.Section{
			{
				ID: "perceivable", Name: "Perceivable", Weight: 30,
				Criteria: []model.Criterion{
					{ID: "1.1.1", Title: "Non-text Content", ConformanceLevel: types.ConformanceA, Principle: "perceivable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "1.2.2", Title: "Captions (Prerecorded)", ConformanceLevel: types.ConformanceA, Principle: "perceivable", TestMethod: types.TestMethodManual, RequiredForCompliance: true},
					{ID: "1.3.1", Title: "Info and Relationships", ConformanceLevel: types.ConformanceA, Principle: "perceivable", TestMethod: types.TestMethodHybrid, RequiredForCompliance: true},
					{ID: "1.4.3", Title: "Contrast (Minimum)", ConformanceLevel: types.ConformanceAA, Principle: "perceivable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "1.4.5", Title: "Images of Text", ConformanceLevel: types.ConformanceAA, Principle: "perceivable", TestMethod: types.TestMethodManual, RequiredForCompliance: true},
				},
			},
			{
				ID: "operable", Name: "Operable", Weight: 30,
				Criteria: []model.Criterion{
					{ID: "2.1.1", Title: "Keyboard", ConformanceLevel: types.ConformanceA, Principle: "operable", TestMethod: types.TestMethodHybrid, RequiredForCompliance: true},
					{ID: "2.4.2", Title: "Page Titled", ConformanceLevel: types.ConformanceA, Principle: "operable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "2.4.4", Title: "Link Purpose (In Context)", ConformanceLevel: types.ConformanceA, Principle: "operable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "2.4.7", Title: "Focus Visible", ConformanceLevel: types.ConformanceAA, Principle: "operable", TestMethod: types.TestMethodManual, RequiredForCompliance: true},
				},
			},
			{
				ID: "understandable", Name: "Understandable", Weight: 20,
				Criteria: []model.Criterion{
					{ID: "3.1.1", Title: "Language of Page", ConformanceLevel: types.ConformanceA, Principle: "understandable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "3.2.3", Title: "Consistent Navigation", ConformanceLevel: types.ConformanceAA, Principle: "understandable", TestMethod: types.TestMethodManual, RequiredForCompliance: true},
					{ID: "3.3.2", Title: "Labels or Instructions", ConformanceLevel: types.ConformanceA, Principle: "understandable", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
				},
			},
			{
				ID: "robust", Name: "Robust", Weight: 20,
				Criteria: []model.Criterion{
					{ID: "4.1.1", Title: "Parsing", ConformanceLevel: types.ConformanceA, Principle: "robust", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
					{ID: "4.1.2", Title: "Name, Role, Value", ConformanceLevel: types.ConformanceA, Principle: "robust", TestMethod: types.TestMethodAutomated, RequiredForCompliance: true},
				},
			},
		},
	}, nil
}
