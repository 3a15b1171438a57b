package interfaces

import (
	"context"
	"time"

	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// Repository defines the interface for scan summary persistence
type Repository interface {
	// SaveScan persists a scan summary
	SaveScan(ctx context.Context, scan *model.ScanSummary) error

	// GetScan retrieves a scan summary by ID
	GetScan(ctx context.Context, id types.ScanID) (*model.ScanSummary, error)

	// ListScans lists scan summaries for a site within [from, to),
	// oldest first. A zero "to" means no upper bound.
	ListScans(ctx context.Context, siteID types.SiteID, from, to time.Time) ([]*model.ScanSummary, error)

	// Close closes the repository connection
	Close() error
}
