package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/phrazzld/destiny-matrix/internal/config"
	"github.com/phrazzld/destiny-matrix/internal/domain/numerology"
	"github.com/phrazzld/destiny-matrix/internal/platform/metrics"
	"github.com/phrazzld/destiny-matrix/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// registry backs the /metrics endpoint; nil when metrics are disabled.
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	matrixService service.MatrixService

	cleanups []func()
}

// newApplication wires the services from configuration. A nil registry
// creates a fresh one, which keeps tests independent of the global registerer.
func newApplication(cfg *config.Config, logger *slog.Logger, registry *prometheus.Registry) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	if cfg.Metrics.Enabled {
		if registry == nil {
			registry = prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}
		app.registry = registry
		app.metrics = metrics.New(registry)
	}

	interpreter := numerology.NewServiceWithParams(numerology.NewParams(numerology.ParamsConfig{
		StrongThreshold: cfg.Matrix.StrongThreshold,
		TriadThreshold:  cfg.Matrix.TriadThreshold,
	}))

	var err error
	app.matrixService, err = service.NewMatrixService(
		interpreter,
		service.Config{
			BatchMaxSize:     cfg.Matrix.BatchMaxSize,
			BatchConcurrency: cfg.Matrix.BatchConcurrency,
		},
		logger,
		app.metrics,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create matrix service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// onCleanup registers fn to run during shutdown, in reverse order.
func (app *application) onCleanup(fn func()) {
	app.cleanups = append(app.cleanups, fn)
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	for i := len(app.cleanups) - 1; i >= 0; i-- {
		app.cleanups[i]()
	}

	app.logger.Info("Application shutdown completed")
}
