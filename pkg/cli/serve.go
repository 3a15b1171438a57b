package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/scanlight-hq/scanlight/pkg/cli/config"
	controller "github.com/scanlight-hq/scanlight/pkg/controller/http"
	"github.com/scanlight-hq/scanlight/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		firestoreCfg config.Firestore
		templatesCfg config.Templates
		slackCfg     config.Slack
	)

	flags := joinFlags(
		serverCfg.Flags(),
		firestoreCfg.Flags(),
		templatesCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Get logger from root command metadata
			logger := ctxlog.From(ctx)

			logger.Info("Starting scanlight server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("firestore", firestoreCfg),
				slog.Any("templates", templatesCfg),
				slog.Any("slack", slackCfg),
			)

			// Create repository using config
			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			// Build the immutable template registry
			registry, err := templatesCfg.Configure()
			if err != nil {
				return err
			}
			logger.Info("Template registry loaded", "templates", registry.Len())

			// Optional risk alert notifier
			notifier := slackCfg.ConfigureOptional()
			if notifier == nil {
				logger.Info("Slack notifier not configured; risk alerts disabled")
			}

			// Create use cases
			ingestUC := usecase.NewIngest(repo)
			analyticsUC := usecase.NewAnalytics(repo, registry, notifier)
			complianceUC := usecase.NewCompliance(repo, registry)

			// Create HTTP server
			server, err := controller.NewServer(
				ctx,
				serverCfg.Addr,
				ingestUC,
				analyticsUC,
				complianceUC,
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
