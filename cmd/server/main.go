// Package main implements the entry point for the destiny matrix HTTP server,
// which derives and interprets numerology matrices from birth dates.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/destiny-matrix/internal/config"
	"github.com/phrazzld/destiny-matrix/internal/platform/logger"
	"github.com/phrazzld/destiny-matrix/internal/platform/tracing"
)

func main() {
	ctx := context.Background()

	cfg, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	shutdownTracing, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		l.Error("Failed to set up tracing", "error", err)
	}

	app, err := newApplication(cfg, l, nil)
	if err != nil {
		l.Error("Failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}
	app.onCleanup(func() {
		if err := shutdownTracing(context.Background()); err != nil {
			l.Error("Error flushing traces", "error", err)
		}
	})

	if err := app.Run(ctx); err != nil {
		l.Error("Application error", "error", err)
		log.Fatalf("Application error: %v", err)
	}
}

// loadAppConfig loads the application configuration from environment variables or config file.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"metrics_enabled", cfg.Metrics.Enabled,
		"tracing_enabled", cfg.Tracing.Enabled)

	return cfg, nil
}
