package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
	"github.com/scanlight-hq/scanlight/pkg/repository"
	"github.com/scanlight-hq/scanlight/pkg/service/template"
	"github.com/scanlight-hq/scanlight/pkg/usecase"
)

func newRegistry(t *testing.T) *template.Registry {
	t.Helper()
	registry, err := template.NewRegistry(
		template.WCAG21Provider{},
		template.ADAProvider{},
		template.Section508Provider{},
	)
	gt.NoError(t, err)
	return registry
}

func storeScan(t *testing.T, repo interface {
	SaveScan(ctx context.Context, scan *model.ScanSummary) error
}, id string, ts time.Time, score float64, synthetic bool) {
	t.Helper()
	scan := &model.ScanSummary{
		ID:           types.ScanID(id),
		SiteID:       "site-1",
		Timestamp:    ts,
		OverallScore: &score,
		IssueCount:   5,
		ImpactCounts: model.ImpactCounts{Serious: 2, Moderate: 3},
		SecondaryMetrics: map[types.MetricName]float64{
			types.MetricPerformance: score - 10,
		},
		RuleViolationCounts: map[types.RuleID]int{"image-alt": 2},
		IsSynthetic:         synthetic,
	}
	gt.NoError(t, repo.SaveScan(context.Background(), scan))
}

func TestAnalyticsBuildReport(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("synthetic records are excluded from every group", func(t *testing.T) {
		repo := repository.NewMemory()
		storeScan(t, repo, "s1", base.AddDate(0, 0, 1), 80, false)
		storeScan(t, repo, "s2", base.AddDate(0, 0, 2), 90, false)
		storeScan(t, repo, "s3", base.AddDate(0, 0, 3), 70, false)
		storeScan(t, repo, "s4", base.AddDate(0, 0, 4), 10, true)
		storeScan(t, repo, "s5", base.AddDate(0, 0, 5), 10, true)

		uc := usecase.NewAnalytics(repo, newRegistry(t), nil)
		report, err := uc.BuildReport(ctx, "site-1", base, base.AddDate(0, 0, 10), "", nil)
		gt.NoError(t, err)

		gt.True(t, report.HasData)
		gt.Equal(t, report.Overview.ScanCount, 3)
		gt.Equal(t, report.Overview.AverageScore, 80.0)
		gt.Equal(t, report.Overview.TotalIssues, 15)
		gt.Equal(t, report.Issues[0].OccurrenceCount, 6)
	})

	t.Run("all-synthetic input yields hasData false with typed empties", func(t *testing.T) {
		repo := repository.NewMemory()
		storeScan(t, repo, "s1", base.AddDate(0, 0, 1), 80, true)
		storeScan(t, repo, "s2", base.AddDate(0, 0, 2), 90, true)

		uc := usecase.NewAnalytics(repo, newRegistry(t), nil)
		report, err := uc.BuildReport(ctx, "site-1", base, base.AddDate(0, 0, 10), "", nil)
		gt.NoError(t, err)

		gt.False(t, report.HasData)
		gt.NotNil(t, report.Overview)
		gt.NotNil(t, report.Trends)
		gt.NotNil(t, report.Issues)
		gt.NotNil(t, report.Performance)
		gt.NotNil(t, report.Compliance)
		gt.NotNil(t, report.Risk)
		gt.NotNil(t, report.Benchmarks)
		gt.Equal(t, report.Overview.ScanCount, 0)
		gt.Equal(t, len(report.Trends.Buckets), 0)
		gt.Equal(t, report.Risk.RiskLevel, types.RiskLow)
		gt.True(t, len(report.Benchmarks.Cohorts) > 0)
	})

	t.Run("unknown template is surfaced, never defaulted", func(t *testing.T) {
		repo := repository.NewMemory()
		uc := usecase.NewAnalytics(repo, newRegistry(t), nil)
		_, err := uc.BuildReport(ctx, "site-1", base, base.AddDate(0, 0, 10), "no-such", nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrTemplateNotFound))
	})

	t.Run("groups parameter limits computed groups", func(t *testing.T) {
		repo := repository.NewMemory()
		storeScan(t, repo, "s1", base.AddDate(0, 0, 1), 80, false)

		uc := usecase.NewAnalytics(repo, newRegistry(t), nil)
		report, err := uc.BuildReport(ctx, "site-1", base, base.AddDate(0, 0, 10), "",
			[]model.MetricGroup{model.GroupOverview})
		gt.NoError(t, err)

		gt.Equal(t, report.Overview.ScanCount, 1)
		// Unrequested groups keep their well-typed empty shape
		gt.Equal(t, len(report.Trends.Buckets), 0)
		gt.Equal(t, len(report.Issues), 0)
	})

	t.Run("re-running the same input yields identical results", func(t *testing.T) {
		repo := repository.NewMemory()
		for i := 0; i < 8; i++ {
			storeScan(t, repo, types.NewScanID().String(), base.AddDate(0, 0, i), float64(60+i*3), false)
		}

		uc := usecase.NewAnalytics(repo, newRegistry(t), nil)
		first, err := uc.BuildReport(ctx, "site-1", base, base.AddDate(0, 0, 10), "", nil)
		gt.NoError(t, err)
		second, err := uc.BuildReport(ctx, "site-1", base, base.AddDate(0, 0, 10), "", nil)
		gt.NoError(t, err)

		a, err := json.Marshal(first)
		gt.NoError(t, err)
		b, err := json.Marshal(second)
		gt.NoError(t, err)
		gt.Equal(t, string(a), string(b))
	})

	t.Run("long range reports weekly buckets", func(t *testing.T) {
		repo := repository.NewMemory()
		storeScan(t, repo, "s1", base.AddDate(0, 0, 1), 80, false)

		uc := usecase.NewAnalytics(repo, newRegistry(t), nil)
		report, err := uc.BuildReport(ctx, "site-1", base, base.AddDate(0, 3, 0), "", nil)
		gt.NoError(t, err)
		gt.Equal(t, report.Trends.BucketWidth, model.BucketWeek)
	})
}

type mockNotifier struct {
	mu    sync.Mutex
	calls []*model.PortfolioRisk
	done  chan struct{}
}

func (m *mockNotifier) NotifyPortfolioRisk(ctx context.Context, risk *model.PortfolioRisk) error {
	m.mu.Lock()
	m.calls = append(m.calls, risk)
	m.mu.Unlock()
	close(m.done)
	return nil
}

func TestAssessPortfolio(t *testing.T) {
	ctx := context.Background()

	t.Run("critical portfolio dispatches notification", func(t *testing.T) {
		notifier := &mockNotifier{done: make(chan struct{})}
		uc := usecase.NewAnalytics(repository.NewMemory(), newRegistry(t), notifier)

		risk, err := uc.AssessPortfolio(ctx, []model.AccountFlags{
			{AccountID: "acct-1", InactiveDays: 60, PaymentPastDue: true},
		})
		gt.NoError(t, err)
		gt.Equal(t, risk.CriticalCount, 1)

		select {
		case <-notifier.done:
		case <-time.After(2 * time.Second):
			t.Fatal("notification was not dispatched")
		}

		notifier.mu.Lock()
		defer notifier.mu.Unlock()
		gt.Equal(t, len(notifier.calls), 1)
	})

	t.Run("healthy portfolio sends nothing", func(t *testing.T) {
		notifier := &mockNotifier{done: make(chan struct{})}
		uc := usecase.NewAnalytics(repository.NewMemory(), newRegistry(t), notifier)

		risk, err := uc.AssessPortfolio(ctx, []model.AccountFlags{
			{AccountID: "acct-1", InactiveDays: 2},
		})
		gt.NoError(t, err)
		gt.Equal(t, risk.AtRiskCount, 0)

		select {
		case <-notifier.done:
			t.Fatal("unexpected notification")
		case <-time.After(100 * time.Millisecond):
		}
	})

	t.Run("nil notifier is tolerated", func(t *testing.T) {
		uc := usecase.NewAnalytics(repository.NewMemory(), newRegistry(t), nil)
		risk, err := uc.AssessPortfolio(ctx, []model.AccountFlags{
			{AccountID: "acct-1", PaymentPastDue: true},
		})
		gt.NoError(t, err)
		gt.Equal(t, risk.CriticalCount, 1)
	})
}
