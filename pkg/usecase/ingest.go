package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/interfaces"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/service/analytics"
)

// Ingest handles scan payload normalization and persistence
type Ingest struct {
	repo interfaces.Repository
}

// NewIngest creates a new ingest use case
func NewIngest(repo interfaces.Repository) *Ingest {
	return &Ingest{repo: repo}
}

// Ingest normalizes one raw scan payload and persists the summary.
// Synthetic detection happens here, once, so no downstream component
// ever re-inspects the raw payload shape.
func (uc *Ingest) Ingest(ctx context.Context, raw *model.RawScanPayload) (*model.ScanSummary, error) {
	scan, err := analytics.Normalize(raw)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to normalize scan payload")
	}

	if err := uc.repo.SaveScan(ctx, scan); err != nil {
		return nil, goerr.Wrap(err, "failed to save scan summary",
			goerr.V("id", scan.ID))
	}

	return scan, nil
}

// IngestBatch normalizes and persists a batch of payloads. Records that
// fail normalization or storage are logged and skipped; the rest of the
// batch proceeds.
func (uc *Ingest) IngestBatch(ctx context.Context, raws []*model.RawScanPayload) ([]*model.ScanSummary, error) {
	logger := ctxlog.From(ctx)

	scans := make([]*model.ScanSummary, 0, len(raws))
	for i, raw := range raws {
		scan, err := uc.Ingest(ctx, raw)
		if err != nil {
			logger.Warn("Skipping bad scan payload in batch",
				"index", i,
				"error", err,
			)
			continue
		}
		scans = append(scans, scan)
	}

	return scans, nil
}
