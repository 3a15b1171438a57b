package usecase

import (
	"context"
	"time"

	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// IngestUseCase defines the interface for scan ingestion
type IngestUseCase interface {
	// Ingest normalizes and persists one raw scan payload
	Ingest(ctx context.Context, raw *model.RawScanPayload) (*model.ScanSummary, error)

	// IngestBatch normalizes and persists a batch; one bad record does
	// not abort the rest. Returns the successfully stored summaries.
	IngestBatch(ctx context.Context, raws []*model.RawScanPayload) ([]*model.ScanSummary, error)
}

// AnalyticsUseCase defines the interface for analytics payload assembly
type AnalyticsUseCase interface {
	// BuildReport assembles the analytics payload for a site and range.
	// groups limits which metric groups are computed; empty means all.
	BuildReport(ctx context.Context, siteID types.SiteID, from, to time.Time, templateID types.TemplateID, groups []model.MetricGroup) (*model.AnalyticsReport, error)

	// AssessPortfolio scores account health flags and dispatches an
	// alert when critical records are present
	AssessPortfolio(ctx context.Context, accounts []model.AccountFlags) (*model.PortfolioRisk, error)
}

// ComplianceUseCase defines the interface for standalone compliance reports
type ComplianceUseCase interface {
	// Score evaluates a site's scans in range against one template
	Score(ctx context.Context, siteID types.SiteID, from, to time.Time, templateID types.TemplateID) (*model.ComplianceResult, error)

	// Templates lists the registered compliance templates
	Templates(ctx context.Context) []*model.ComplianceTemplate
}
