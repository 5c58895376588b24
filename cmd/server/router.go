package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/phrazzld/destiny-matrix/internal/api"
	apiMiddleware "github.com/phrazzld/destiny-matrix/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.RequestLogger)
	r.Use(middleware.Recoverer)
	if app.metrics != nil {
		r.Use(apiMiddleware.MetricsMiddleware(app.metrics))
	}

	matrixHandler := api.NewMatrixHandler(app.matrixService)
	r.Route("/api", matrixHandler.Routes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.registry != nil {
		r.Handle(app.config.Metrics.Path, promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))
	}

	return r
}
