package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/interfaces"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu    sync.RWMutex
	scans map[types.ScanID]*model.ScanSummary
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		scans: make(map[types.ScanID]*model.ScanSummary),
	}
}

// SaveScan saves a scan summary to memory
func (m *Memory) SaveScan(ctx context.Context, scan *model.ScanSummary) error {
	if scan == nil {
		return goerr.New("scan is nil")
	}
	if err := scan.Validate(); err != nil {
		return goerr.Wrap(err, "invalid scan summary")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *scan
	m.scans[scan.ID] = &copied
	return nil
}

// GetScan retrieves a scan summary by ID
func (m *Memory) GetScan(ctx context.Context, id types.ScanID) (*model.ScanSummary, error) {
	if id == "" {
		return nil, goerr.New("scan ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	scan, exists := m.scans[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrScanNotFound, "no such scan",
			goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	copied := *scan
	return &copied, nil
}

// ListScans lists scan summaries for a site within [from, to), oldest first
func (m *Memory) ListScans(ctx context.Context, siteID types.SiteID, from, to time.Time) ([]*model.ScanSummary, error) {
	if siteID == "" {
		return nil, goerr.New("site ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var scans []*model.ScanSummary
	for _, scan := range m.scans {
		if scan.SiteID != siteID {
			continue
		}
		if scan.Timestamp.Before(from) {
			continue
		}
		if !to.IsZero() && !scan.Timestamp.Before(to) {
			continue
		}
		copied := *scan
		scans = append(scans, &copied)
	}

	sort.Slice(scans, func(i, j int) bool {
		return scans[i].Timestamp.Before(scans[j].Timestamp)
	})

	return scans, nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}
