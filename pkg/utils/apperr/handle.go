package apperr

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs an application error with its structured context values.
// It is the single sink for errors that have no caller left to return to,
// such as background alert delivery.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)

	attrs := []any{slog.Any("error", err)}
	if goErr := goerr.Unwrap(err); goErr != nil {
		for k, v := range goErr.Values() {
			attrs = append(attrs, slog.Any(k, v))
		}
	}

	logger.Error("application error", attrs...)
}
