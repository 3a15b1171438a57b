package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/interfaces"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
	"github.com/scanlight-hq/scanlight/pkg/service/analytics"
	"github.com/scanlight-hq/scanlight/pkg/service/template"
	"github.com/scanlight-hq/scanlight/pkg/utils/async"
)

// DefaultTemplateID is the template used when an analytics request does
// not name one
const DefaultTemplateID = types.TemplateID("wcag21-aa")

// Analytics assembles the per-request analytics payload
type Analytics struct {
	repo     interfaces.Repository
	registry *template.Registry
	scorer   *analytics.Scorer
	assessor *analytics.Assessor
	notifier interfaces.Notifier
}

// NewAnalytics creates a new analytics use case. notifier may be nil
// when no alert channel is configured.
func NewAnalytics(repo interfaces.Repository, registry *template.Registry, notifier interfaces.Notifier) *Analytics {
	return &Analytics{
		repo:     repo,
		registry: registry,
		scorer:   analytics.NewScorer(),
		assessor: analytics.NewAssessor(),
		notifier: notifier,
	}
}

// BuildReport fetches the site's scans, filters synthetic records and
// runs the independent computations concurrently. Every group of the
// result is always well-typed; HasData is false when filtering leaves no
// real records.
func (uc *Analytics) BuildReport(ctx context.Context, siteID types.SiteID, from, to time.Time, templateID types.TemplateID, groups []model.MetricGroup) (*model.AnalyticsReport, error) {
	if templateID == "" {
		templateID = DefaultTemplateID
	}
	tmpl, err := uc.registry.Get(templateID)
	if err != nil {
		return nil, err
	}

	stored, err := uc.repo.ListScans(ctx, siteID, from, to)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list scans",
			goerr.V("siteID", siteID))
	}

	scans := analytics.FilterSynthetic(stored)

	width := model.BucketDay
	if to.Sub(from) > 60*24*time.Hour {
		width = model.BucketWeek
	}
	report := model.EmptyAnalyticsReport(tmpl, analytics.ReferenceCohorts(), width)
	if len(scans) == 0 {
		return report, nil
	}
	report.HasData = true

	wanted := make(map[model.MetricGroup]bool, len(groups))
	for _, g := range groups {
		wanted[g] = true
	}
	include := func(g model.MetricGroup) bool {
		return len(wanted) == 0 || wanted[g]
	}

	// Every computation is a pure function of the filtered scan set, so
	// the groups run concurrently and join
	var wg sync.WaitGroup
	run := func(g model.MetricGroup, fn func()) {
		if !include(g) {
			return
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	run(model.GroupOverview, func() {
		report.Overview = buildOverview(scans)
	})
	run(model.GroupTrends, func() {
		report.Trends = analytics.AggregateTrend(scans, from, to)
	})
	run(model.GroupIssues, func() {
		report.Issues = analytics.TopViolations(scans, analytics.DefaultLeaderboardSize)
	})
	run(model.GroupPerformance, func() {
		report.Performance = buildPerformanceInsight(scans, types.MetricPerformance)
	})
	run(model.GroupCompliance, func() {
		report.Compliance = uc.scorer.Score(scans, tmpl)
	})
	run(model.GroupRisk, func() {
		report.Risk = uc.assessor.AssessRisk(scans)
	})
	run(model.GroupBenchmarks, func() {
		report.Benchmarks = analytics.CompareBenchmarks(scans)
	})
	wg.Wait()

	return report, nil
}

// AssessPortfolio scores account health flags. When critical records are
// present and a notifier is configured, the alert is dispatched in the
// background so the request path never blocks on delivery.
func (uc *Analytics) AssessPortfolio(ctx context.Context, accounts []model.AccountFlags) (*model.PortfolioRisk, error) {
	portfolio := uc.assessor.AssessPortfolioRisk(accounts)

	if uc.notifier != nil && portfolio.CriticalCount > 0 {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.notifier.NotifyPortfolioRisk(ctx, portfolio)
		})
	}

	return portfolio, nil
}

// buildOverview computes the headline aggregate of the scan set
func buildOverview(scans []*model.ScanSummary) *model.Overview {
	overview := &model.Overview{ScanCount: len(scans)}

	var scoreSum float64
	var scoreCount int
	for _, scan := range scans {
		overview.TotalIssues += scan.IssueCount
		overview.ImpactCounts.Critical += scan.ImpactCounts.Critical
		overview.ImpactCounts.Serious += scan.ImpactCounts.Serious
		overview.ImpactCounts.Moderate += scan.ImpactCounts.Moderate
		overview.ImpactCounts.Minor += scan.ImpactCounts.Minor
		if score, ok := scan.Score(); ok {
			scoreSum += score
			scoreCount++
		}
	}
	if scoreCount > 0 {
		overview.AverageScore = scoreSum / float64(scoreCount)
	}

	return overview
}

// buildPerformanceInsight correlates the accessibility score series with
// a secondary metric series. Pairing is loose by scan order within the
// range; only scans carrying both values contribute a pair.
func buildPerformanceInsight(scans []*model.ScanSummary, metric types.MetricName) *model.PerformanceInsight {
	var seriesA, seriesB []float64
	for _, scan := range scans {
		score, scoreOK := scan.Score()
		value, metricOK := scan.Metric(metric)
		if scoreOK && metricOK {
			seriesA = append(seriesA, score)
			seriesB = append(seriesB, value)
		}
	}

	correlation := analytics.Correlate(seriesA, seriesB)
	return &model.PerformanceInsight{
		Metric:        metric,
		Correlation:   correlation,
		AverageA11y:   correlation.MeanA,
		AverageMetric: correlation.MeanB,
	}
}
