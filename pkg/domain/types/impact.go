package types

// Impact represents the categorical severity of a violation
type Impact string

// Impact severities, highest first
const (
	ImpactCritical Impact = "critical"
	ImpactSerious  Impact = "serious"
	ImpactModerate Impact = "moderate"
	ImpactMinor    Impact = "minor"
)

// String returns the string representation
func (i Impact) String() string {
	return string(i)
}

// Priority returns the ordering weight of the impact.
// Higher values sort first; unknown impacts return 0.
func (i Impact) Priority() int {
	switch i {
	case ImpactCritical:
		return 4
	case ImpactSerious:
		return 3
	case ImpactModerate:
		return 2
	case ImpactMinor:
		return 1
	default:
		return 0
	}
}

// IsValid returns true if the impact is one of the known severities
func (i Impact) IsValid() bool {
	return i.Priority() > 0
}

// AllImpacts returns the known impacts in priority order
func AllImpacts() []Impact {
	return []Impact{ImpactCritical, ImpactSerious, ImpactModerate, ImpactMinor}
}
