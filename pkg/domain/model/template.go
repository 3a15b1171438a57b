package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// Criterion is a single testable rule within a compliance standard
type Criterion struct {
	ID                    types.CriterionID      `yaml:"id" json:"id"`
	Title                 string                 `yaml:"title" json:"title"`
	ConformanceLevel      types.ConformanceLevel `yaml:"conformanceLevel" json:"conformanceLevel"`
	Principle             string                 `yaml:"principle" json:"principle"`
	TestMethod            types.TestMethod       `yaml:"testMethod" json:"testMethod"`
	RequiredForCompliance bool                   `yaml:"requiredForCompliance" json:"requiredForCompliance"`
}

// Validate validates the criterion
func (c *Criterion) Validate() error {
	if c.ID == "" {
		return goerr.New("criterion ID is required")
	}
	if c.Title == "" {
		return goerr.New("criterion title is required", goerr.V("id", c.ID))
	}
	if !c.ConformanceLevel.IsValid() {
		return goerr.New("invalid conformance level",
			goerr.V("id", c.ID),
			goerr.V("level", c.ConformanceLevel))
	}
	if !c.TestMethod.IsValid() {
		return goerr.New("invalid test method",
			goerr.V("id", c.ID),
			goerr.V("method", c.TestMethod))
	}
	return nil
}

// Section is a named group of criteria with a positive weight
type Section struct {
	ID       types.SectionID `yaml:"id" json:"id"`
	Name     string          `yaml:"name" json:"name"`
	Weight   float64         `yaml:"weight" json:"weight"`
	Criteria []Criterion     `yaml:"criteria" json:"criteria"`
}

// Validate validates the section
func (s *Section) Validate() error {
	if s.ID == "" {
		return goerr.New("section ID is required")
	}
	if s.Name == "" {
		return goerr.New("section name is required", goerr.V("id", s.ID))
	}
	if s.Weight <= 0 {
		return goerr.New("section weight must be positive",
			goerr.V("id", s.ID),
			goerr.V("weight", s.Weight))
	}
	for i, c := range s.Criteria {
		if err := c.Validate(); err != nil {
			return goerr.Wrap(err, "invalid criterion",
				goerr.V("section", s.ID),
				goerr.V("index", i))
		}
	}
	return nil
}

// LevelBand maps a minimum overall score to a qualitative compliance label.
// Bands are evaluated in order; the first band whose MinScore is satisfied
// wins, so they must be sorted by MinScore descending.
type LevelBand struct {
	MinScore float64 `yaml:"minScore" json:"minScore"`
	Label    string  `yaml:"label" json:"label"`
}

// ComplianceTemplate is a named, versioned scoring scheme composed of
// weighted sections of criteria. Templates are static configuration loaded
// once at process start and never mutated at runtime; section weights need
// not sum to 100 and are normalized at scoring time.
type ComplianceTemplate struct {
	ID           types.TemplateID `yaml:"id" json:"id"`
	Name         string           `yaml:"name" json:"name"`
	StandardName string           `yaml:"standardName" json:"standardName"`
	Version      string           `yaml:"version" json:"version"`
	Sections     []Section        `yaml:"sections" json:"sections"`

	// LevelBands define the standard-specific compliance-level mapping.
	// Empty means the default mapping applies.
	LevelBands []LevelBand `yaml:"levelBands,omitempty" json:"levelBands,omitempty"`
}

// Validate validates the template
func (t *ComplianceTemplate) Validate() error {
	if t.ID == "" {
		return goerr.New("template ID is required")
	}
	if t.Name == "" {
		return goerr.New("template name is required", goerr.V("id", t.ID))
	}
	sectionIDs := make(map[types.SectionID]bool)
	for i, s := range t.Sections {
		if err := s.Validate(); err != nil {
			return goerr.Wrap(err, "invalid section",
				goerr.V("template", t.ID),
				goerr.V("index", i))
		}
		if sectionIDs[s.ID] {
			return goerr.New("duplicate section ID",
				goerr.V("template", t.ID),
				goerr.V("section", s.ID))
		}
		sectionIDs[s.ID] = true
	}
	for i := 1; i < len(t.LevelBands); i++ {
		if t.LevelBands[i].MinScore > t.LevelBands[i-1].MinScore {
			return goerr.New("level bands must be sorted by minScore descending",
				goerr.V("template", t.ID),
				goerr.V("index", i))
		}
	}
	return nil
}

// TotalWeight returns the sum of all section weights
func (t *ComplianceTemplate) TotalWeight() float64 {
	var total float64
	for _, s := range t.Sections {
		total += s.Weight
	}
	return total
}

// DefaultLevelBands is the compliance-level mapping applied to templates
// that do not define their own.
var DefaultLevelBands = []LevelBand{
	{MinScore: 90, Label: "Excellent"},
	{MinScore: 75, Label: "Good"},
	{MinScore: 60, Label: "Fair"},
	{MinScore: 0, Label: "Poor"},
}

// ComplianceLevel maps an overall score to the template's qualitative label
func (t *ComplianceTemplate) ComplianceLevel(score float64) string {
	bands := t.LevelBands
	if len(bands) == 0 {
		bands = DefaultLevelBands
	}
	for _, b := range bands {
		if score >= b.MinScore {
			return b.Label
		}
	}
	// Score below the lowest band; the last band is the floor label
	return bands[len(bands)-1].Label
}
