package types

// RiskLevel represents a qualitative risk classification
type RiskLevel string

// Risk levels for the scan-trend assessment
const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// String returns the string representation
func (l RiskLevel) String() string {
	return string(l)
}

// RiskBucket represents a qualitative bucket for at-risk accounts
type RiskBucket string

// Risk buckets for portfolio assessment. Only accounts whose cumulative
// risk score reaches the at-risk threshold receive a bucket.
const (
	RiskBucketMedium   RiskBucket = "Medium"
	RiskBucketHigh     RiskBucket = "High"
	RiskBucketCritical RiskBucket = "Critical"
)

// String returns the string representation
func (b RiskBucket) String() string {
	return string(b)
}
