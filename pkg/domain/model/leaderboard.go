package model

import (
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// LeaderboardEntry is one ranked rule in the violation leaderboard
type LeaderboardEntry struct {
	Rank            int          `json:"rank"`
	RuleID          types.RuleID `json:"ruleId"`
	OccurrenceCount int          `json:"occurrenceCount"`
	Impact          types.Impact `json:"impact,omitempty"`
	RemediationHint string       `json:"remediationHint"`
}
