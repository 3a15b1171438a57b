package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/scanlight-hq/scanlight/pkg/domain/model"
	"github.com/scanlight-hq/scanlight/pkg/repository"
	"github.com/scanlight-hq/scanlight/pkg/usecase"
)

func TestComplianceScore(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("scores stored scans against the named template", func(t *testing.T) {
		repo := repository.NewMemory()
		storeScan(t, repo, "s1", base.AddDate(0, 0, 1), 82, false)
		storeScan(t, repo, "s2", base.AddDate(0, 0, 2), 88, false)

		uc := usecase.NewCompliance(repo, newRegistry(t))
		result, err := uc.Score(ctx, "site-1", base, base.AddDate(0, 0, 10), "wcag21-aa")
		gt.NoError(t, err)

		gt.Equal(t, result.TemplateID, "wcag21-aa")
		gt.Equal(t, len(result.Sections), 4)
		gt.True(t, result.OverallScore >= 0)
	})

	t.Run("empty scan set yields the defined empty result", func(t *testing.T) {
		repo := repository.NewMemory()
		storeScan(t, repo, "s1", base.AddDate(0, 0, 1), 82, true)

		uc := usecase.NewCompliance(repo, newRegistry(t))
		result, err := uc.Score(ctx, "site-1", base, base.AddDate(0, 0, 10), "wcag21-aa")
		gt.NoError(t, err)

		gt.Equal(t, result.OverallScore, 0.0)
		gt.NotNil(t, result.Sections)
		gt.NotNil(t, result.Recommendations)
	})

	t.Run("unknown template is surfaced", func(t *testing.T) {
		uc := usecase.NewCompliance(repository.NewMemory(), newRegistry(t))
		_, err := uc.Score(ctx, "site-1", base, base.AddDate(0, 0, 10), "no-such")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrTemplateNotFound))
	})
}

func TestComplianceTemplates(t *testing.T) {
	uc := usecase.NewCompliance(repository.NewMemory(), newRegistry(t))
	list := uc.Templates(context.Background())
	gt.Equal(t, len(list), 3)
}
