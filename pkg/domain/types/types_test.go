package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

func TestImpactPriority(t *testing.T) {
	t.Run("priority order is critical > serious > moderate > minor", func(t *testing.T) {
		gt.True(t, types.ImpactCritical.Priority() > types.ImpactSerious.Priority())
		gt.True(t, types.ImpactSerious.Priority() > types.ImpactModerate.Priority())
		gt.True(t, types.ImpactModerate.Priority() > types.ImpactMinor.Priority())
	})

	t.Run("unknown impact has zero priority and is invalid", func(t *testing.T) {
		unknown := types.Impact("cosmic")
		gt.Equal(t, unknown.Priority(), 0)
		gt.False(t, unknown.IsValid())
	})
}

func TestConformanceLevelRank(t *testing.T) {
	gt.True(t, types.ConformanceA.Rank() < types.ConformanceAA.Rank())
	gt.True(t, types.ConformanceAA.Rank() < types.ConformanceAAA.Rank())
	gt.False(t, types.ConformanceLevel("AAAA").IsValid())
}

func TestTestMethod(t *testing.T) {
	gt.True(t, types.TestMethodAutomated.IsValid())
	gt.True(t, types.TestMethodHybrid.IsValid())
	gt.False(t, types.TestMethod("guesswork").IsValid())
}

func TestNewScanID(t *testing.T) {
	a := types.NewScanID()
	b := types.NewScanID()
	gt.True(t, a != "")
	gt.NotEqual(t, a, b)
}
