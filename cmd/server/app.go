package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskpulse/internal/config"
	"github.com/phrazzld/taskpulse/internal/platform/httpserver"
	"github.com/phrazzld/taskpulse/internal/summary"
)

// application holds the summary server's dependencies.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	summary *summary.Service
}

// newApplication wires the summary service over the built-in dataset.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	svc, err := summary.NewService(summary.NewStaticSource(summary.DefaultTasks()), nil, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create summary service: %w", err)
	}

	return &application{
		config:  cfg,
		logger:  logger,
		summary: svc,
	}, nil
}

// Run serves HTTP until ctx is cancelled.
func (app *application) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", app.config.Server.Port)
	if err := httpserver.New(addr, app.setupRouter(), app.logger).Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
