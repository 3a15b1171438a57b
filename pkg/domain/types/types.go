package types

import (
	"github.com/google/uuid"
)

// ScanID represents a scan summary identifier
type ScanID string

// String returns the string representation
func (id ScanID) String() string {
	return string(id)
}

// NewScanID creates a new ScanID
func NewScanID() ScanID {
	return ScanID(uuid.New().String())
}

// SiteID represents a scanned site identifier
type SiteID string

// String returns the string representation
func (id SiteID) String() string {
	return string(id)
}

// RuleID represents an accessibility rule identifier (e.g. "image-alt")
type RuleID string

// String returns the string representation
func (id RuleID) String() string {
	return string(id)
}

// TemplateID represents a compliance template identifier
type TemplateID string

// String returns the string representation
func (id TemplateID) String() string {
	return string(id)
}

// SectionID represents a template section identifier
type SectionID string

// String returns the string representation
func (id SectionID) String() string {
	return string(id)
}

// CriterionID represents a compliance criterion identifier (e.g. "1.1.1")
type CriterionID string

// String returns the string representation
func (id CriterionID) String() string {
	return string(id)
}

// MetricName represents a named secondary metric (e.g. "performance", "seo")
type MetricName string

// String returns the string representation
func (n MetricName) String() string {
	return string(n)
}

// Well-known secondary metric names
const (
	MetricPerformance MetricName = "performance"
	MetricSEO         MetricName = "seo"
	MetricWCAGAA      MetricName = "wcagAA"
)

// AccountID represents a customer account identifier
type AccountID string

// String returns the string representation
func (id AccountID) String() string {
	return string(id)
}

// CohortID represents a benchmark reference cohort identifier
type CohortID string

// String returns the string representation
func (id CohortID) String() string {
	return string(id)
}
