package analytics

import (
	"fmt"

	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// RiskConfig holds the policy weights and thresholds for risk scoring.
// These are configuration defaults observed in reference behavior.
type RiskConfig struct {
	// Scan-trend variant
	HighRiskScore      float64 // a sample is high-risk below this score
	HighLevelSamples   int     // more than this many high-risk samples => HIGH
	MediumLevelSamples int     // more than this many => MEDIUM
	TrendWindow        int     // samples averaged at each end of the window

	// Portfolio variant
	InactivityLongDays  int // inactivity beyond this => long weight
	InactivityShortDays int // inactivity beyond this => short weight
	TrialExpiryDays     int // trial expiring within this many days
	UsageRatioBound     float64
	FailedScanBound     int

	WeightInactivityLong  int
	WeightInactivityShort int
	WeightTrialExpiry     int
	WeightUsage           int
	WeightFailedScans     int
	WeightPaymentPastDue  int

	AtRiskScore   int
	CriticalScore int
	HighScore     int
}

// DefaultRiskConfig returns the default risk weights
func DefaultRiskConfig() RiskConfig {
	return RiskConfig{
		HighRiskScore:      50,
		HighLevelSamples:   5,
		MediumLevelSamples: 2,
		TrendWindow:        10,

		InactivityLongDays:  30,
		InactivityShortDays: 14,
		TrialExpiryDays:     7,
		UsageRatioBound:     0.8,
		FailedScanBound:     3,

		WeightInactivityLong:  40,
		WeightInactivityShort: 20,
		WeightTrialExpiry:     30,
		WeightUsage:           15,
		WeightFailedScans:     25,
		WeightPaymentPastDue:  50,

		AtRiskScore:   20,
		CriticalScore: 50,
		HighScore:     30,
	}
}

// Assessor derives qualitative risk signals from scan windows and
// account health flags
type Assessor struct {
	cfg RiskConfig
}

// NewAssessor creates an assessor with the default weights
func NewAssessor() *Assessor {
	return &Assessor{cfg: DefaultRiskConfig()}
}

// NewAssessorWithConfig creates an assessor with custom weights
func NewAssessorWithConfig(cfg RiskConfig) *Assessor {
	return &Assessor{cfg: cfg}
}

// AssessRisk classifies a rolling window of scans, oldest first.
// The trend delta is mean(newest samples) minus mean(oldest samples),
// capturing direction of travel rather than current level.
func (a *Assessor) AssessRisk(window []*model.ScanSummary) *model.RiskAssessment {
	assessment := &model.RiskAssessment{
		RiskLevel:   types.RiskLow,
		SampleCount: len(window),
	}
	if len(window) == 0 {
		return assessment
	}

	for _, scan := range window {
		if a.isHighRisk(scan) {
			assessment.HighRiskSamples++
		}
	}

	switch {
	case assessment.HighRiskSamples > a.cfg.HighLevelSamples:
		assessment.RiskLevel = types.RiskHigh
	case assessment.HighRiskSamples > a.cfg.MediumLevelSamples:
		assessment.RiskLevel = types.RiskMedium
	}

	w := a.cfg.TrendWindow
	if w > len(window) {
		w = len(window)
	}
	oldest := meanScore(window[:w])
	newest := meanScore(window[len(window)-w:])
	assessment.RiskTrendDelta = newest - oldest

	return assessment
}

// isHighRisk reports whether one scan counts as a high-risk sample:
// overall score below the bound, or any critical violation present
func (a *Assessor) isHighRisk(scan *model.ScanSummary) bool {
	if scan.ImpactCounts.Critical > 0 {
		return true
	}
	if score, ok := scan.Score(); ok {
		return score < a.cfg.HighRiskScore
	}
	return false
}

// AssessPortfolioRisk scores every account's health flags with fixed
// point weights and buckets the at-risk ones
func (a *Assessor) AssessPortfolioRisk(accounts []model.AccountFlags) *model.PortfolioRisk {
	portfolio := &model.PortfolioRisk{
		Accounts: make([]model.AccountRisk, 0, len(accounts)),
	}

	for _, flags := range accounts {
		risk := a.assessAccount(flags)
		portfolio.Accounts = append(portfolio.Accounts, risk)
		if !risk.AtRisk {
			continue
		}
		portfolio.AtRiskCount++
		switch risk.Bucket {
		case types.RiskBucketCritical:
			portfolio.CriticalCount++
		case types.RiskBucketHigh:
			portfolio.HighCount++
		}
	}

	return portfolio
}

func (a *Assessor) assessAccount(flags model.AccountFlags) model.AccountRisk {
	risk := model.AccountRisk{
		AccountID: flags.AccountID,
		Factors:   []string{},
	}

	switch {
	case flags.InactiveDays > a.cfg.InactivityLongDays:
		risk.Score += a.cfg.WeightInactivityLong
		risk.Factors = append(risk.Factors,
			fmt.Sprintf("No activity for %d days", flags.InactiveDays))
	case flags.InactiveDays >= a.cfg.InactivityShortDays:
		risk.Score += a.cfg.WeightInactivityShort
		risk.Factors = append(risk.Factors,
			fmt.Sprintf("Low activity: %d days since last scan", flags.InactiveDays))
	}

	if flags.OnTrial && flags.TrialDaysRemaining <= a.cfg.TrialExpiryDays {
		risk.Score += a.cfg.WeightTrialExpiry
		risk.Factors = append(risk.Factors,
			fmt.Sprintf("Trial expires in %d days", flags.TrialDaysRemaining))
	}

	if flags.UsageRatio >= a.cfg.UsageRatioBound {
		risk.Score += a.cfg.WeightUsage
		risk.Factors = append(risk.Factors,
			fmt.Sprintf("Usage at %.0f%% of plan limit", flags.UsageRatio*100))
	}

	if flags.FailedScans >= a.cfg.FailedScanBound {
		risk.Score += a.cfg.WeightFailedScans
		risk.Factors = append(risk.Factors,
			fmt.Sprintf("%d failed scans in the trailing window", flags.FailedScans))
	}

	if flags.PaymentPastDue {
		risk.Score += a.cfg.WeightPaymentPastDue
		risk.Factors = append(risk.Factors, "Payment past due or canceled")
	}

	if risk.Score >= a.cfg.AtRiskScore {
		risk.AtRisk = true
		switch {
		case risk.Score >= a.cfg.CriticalScore:
			risk.Bucket = types.RiskBucketCritical
		case risk.Score >= a.cfg.HighScore:
			risk.Bucket = types.RiskBucketHigh
		default:
			risk.Bucket = types.RiskBucketMedium
		}
	}

	return risk
}

// meanScore returns the mean of non-nil overall scores in the slice
func meanScore(scans []*model.ScanSummary) float64 {
	var sum float64
	var n int
	for _, scan := range scans {
		if score, ok := scan.Score(); ok {
			sum += score
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
