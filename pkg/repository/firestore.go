package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/interfaces"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	scansCollection = "scan_summaries"

	fieldSiteID    = "site_id"
	fieldTimestamp = "timestamp"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Probe the connection so an invalid project or missing permission
	// fails fast instead of on the first request
	_, err = client.Collection(scansCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		// Other errors (like NotFound for new projects) may just mean an
		// empty collection
		logger.Debug("Firestore connection probe returned error",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// SaveScan saves a scan summary to Firestore
func (f *Firestore) SaveScan(ctx context.Context, scan *model.ScanSummary) error {
	if scan == nil {
		return goerr.New("scan is nil")
	}
	if err := scan.Validate(); err != nil {
		return goerr.Wrap(err, "invalid scan summary")
	}

	_, err := f.client.Collection(scansCollection).Doc(scan.ID.String()).Set(ctx, scan)
	if err != nil {
		return goerr.Wrap(err, "failed to save scan summary",
			goerr.V("id", scan.ID))
	}

	return nil
}

// GetScan retrieves a scan summary by ID
func (f *Firestore) GetScan(ctx context.Context, id types.ScanID) (*model.ScanSummary, error) {
	if id == "" {
		return nil, goerr.New("scan ID is empty")
	}

	doc, err := f.client.Collection(scansCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrScanNotFound, "no such scan",
				goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get scan summary",
			goerr.V("id", id))
	}

	var scan model.ScanSummary
	if err := doc.DataTo(&scan); err != nil {
		return nil, goerr.Wrap(err, "failed to decode scan summary",
			goerr.V("id", id))
	}

	return &scan, nil
}

// ListScans lists scan summaries for a site within [from, to), oldest first
func (f *Firestore) ListScans(ctx context.Context, siteID types.SiteID, from, to time.Time) ([]*model.ScanSummary, error) {
	if siteID == "" {
		return nil, goerr.New("site ID is empty")
	}

	query := f.client.Collection(scansCollection).
		Where(fieldSiteID, "==", siteID.String()).
		Where(fieldTimestamp, ">=", from).
		OrderBy(fieldTimestamp, firestore.Asc)
	if !to.IsZero() {
		query = query.Where(fieldTimestamp, "<", to)
	}

	var scans []*model.ScanSummary
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate scan summaries",
				goerr.V("siteID", siteID))
		}

		var scan model.ScanSummary
		if err := doc.DataTo(&scan); err != nil {
			// One undecodable document must not abort the rest
			ctxlog.From(ctx).Warn("Skipping undecodable scan summary",
				"docID", doc.Ref.ID,
				"error", err,
			)
			continue
		}
		scans = append(scans, &scan)
	}

	return scans, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
