package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/domain/interfaces"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/domain/types"
	"github.com/scanlight-hq/scanlight/pkg/service/analytics"
	"github.com/scanlight-hq/scanlight/pkg/service/template"
)

// Compliance produces standalone compliance reports for report
// generation collaborators
type Compliance struct {
	repo     interfaces.Repository
	registry *template.Registry
	scorer   *analytics.Scorer
}

// NewCompliance creates a new compliance use case
func NewCompliance(repo interfaces.Repository, registry *template.Registry) *Compliance {
	return &Compliance{
		repo:     repo,
		registry: registry,
		scorer:   analytics.NewScorer(),
	}
}

// Score evaluates a site's scans in range against one template. An
// unknown template ID is surfaced to the caller; an empty (post-filter)
// scan set yields the defined empty result, not an error.
func (uc *Compliance) Score(ctx context.Context, siteID types.SiteID, from, to time.Time, templateID types.TemplateID) (*model.ComplianceResult, error) {
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
	if len(scans) == 0 {
		return model.EmptyComplianceResult(tmpl), nil
	}

	return uc.scorer.Score(scans, tmpl), nil
}

// Templates lists the registered compliance templates
func (uc *Compliance) Templates(ctx context.Context) []*model.ComplianceTemplate {
	return uc.registry.List()
}
