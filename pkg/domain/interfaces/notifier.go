package interfaces

import (
	"context"

	"github.com/scanlight-hq/scanlight/pkg/domain/model"
)

// Notifier delivers portfolio risk alerts to an external channel
type Notifier interface {
	// NotifyPortfolioRisk sends an alert for the given assessment
	NotifyPortfolioRisk(ctx context.Context, risk *model.PortfolioRisk) error
}
