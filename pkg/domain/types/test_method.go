package types

// TestMethod represents how a compliance criterion is verified
type TestMethod string

// Supported test methods
const (
	TestMethodAutomated TestMethod = "automated"
	TestMethodManual    TestMethod = "manual"
	TestMethodHybrid    TestMethod = "hybrid"
)

// String returns the string representation
func (m TestMethod) String() string {
	return string(m)
}

// IsValid returns true if the test method is known
func (m TestMethod) IsValid() bool {
	switch m {
	case TestMethodAutomated, TestMethodManual, TestMethodHybrid:
		return true
	default:
		return false
	}
}

// ConformanceLevel represents a WCAG-style conformance level
type ConformanceLevel string

// Conformance levels in ascending strictness
const (
	ConformanceA   ConformanceLevel = "A"
	ConformanceAA  ConformanceLevel = "AA"
	ConformanceAAA ConformanceLevel = "AAA"
)

// String returns the string representation
func (l ConformanceLevel) String() string {
	return string(l)
}

// Rank returns the ordinal position of the level (A=1, AA=2, AAA=3, unknown=0)
func (l ConformanceLevel) Rank() int {
	switch l {
	case ConformanceA:
		return 1
	case ConformanceAA:
		return 2
	case ConformanceAAA:
		return 3
	default:
		return 0
	}
}

// IsValid returns true if the conformance level is known
func (l ConformanceLevel) IsValid() bool {
	return l.Rank() > 0
}
