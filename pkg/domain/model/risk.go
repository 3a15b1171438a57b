package model

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// RiskAssessment classifies the risk trend of a rolling window of scans.
// It is derived on demand and never stored.
type RiskAssessment struct {
	RiskLevel types.RiskLevel `json:"riskLevel"`

	// RiskTrendDelta is mean(newest samples) - mean(oldest samples);
	// positive means scores are improving
	RiskTrendDelta float64 `json:"riskTrendDelta"`

	HighRiskSamples int `json:"highRiskSamples"`
	SampleCount     int `json:"sampleCount"`
}

// EmptyRiskAssessment returns the defined zero-shape assessment
func EmptyRiskAssessment() *RiskAssessment {
	return &RiskAssessment{RiskLevel: types.RiskLow}
}

// AccountFlags is the per-account health snapshot consumed by the
// portfolio risk assessment. It is supplied by billing/activity
// collaborators; this engine only scores it.
type AccountFlags struct {
	AccountID          types.AccountID `json:"accountId"`
	InactiveDays       int             `json:"inactiveDays"`
	OnTrial            bool            `json:"onTrial"`
	TrialDaysRemaining int             `json:"trialDaysRemaining"`
	UsageRatio         float64         `json:"usageRatio"`
	FailedScans        int             `json:"failedScans"`
	PaymentPastDue     bool            `json:"paymentPastDue"`
}

// AccountRisk is the scored outcome for one account
type AccountRisk struct {
	AccountID types.AccountID  `json:"accountId"`
	Score     int              `json:"score"`
	AtRisk    bool             `json:"atRisk"`
	Bucket    types.RiskBucket `json:"bucket,omitempty"`
	Factors   []string         `json:"factors"`
}

// PortfolioRisk is the fleet-wide health signal
type PortfolioRisk struct {
	Accounts      []AccountRisk `json:"accounts"`
	AtRiskCount   int           `json:"atRiskCount"`
	CriticalCount int           `json:"criticalCount"`
	HighCount     int           `json:"highCount"`
}
