package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/destiny-matrix/internal/config"
	"github.com/phrazzld/destiny-matrix/internal/platform/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 0, LogLevel: "debug", ShutdownTimeoutSeconds: 2},
		Matrix: config.MatrixConfig{StrongThreshold: 3, TriadThreshold: 2, BatchMaxSize: 5, BatchConcurrency: 2},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func newTestApp(t *testing.T, cfg *config.Config) *application {
	t.Helper()

	_, log := logger.NewTestLogger(t)
	app, err := newApplication(cfg, log, prometheus.NewRegistry())
	require.NoError(t, err)
	return app
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestNewApplicationRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := newApplication(nil, nil, nil)
	assert.Error(t, err)
}

func TestRouter(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, testConfig())
	router := app.setupRouter()

	health := get(t, router, "/health")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "OK", health.Body.String())

	positions := get(t, router, "/api/positions")
	assert.Equal(t, http.StatusOK, positions.Code)
	assert.NotEmpty(t, positions.Header().Get("X-Trace-ID"))

	reading := get(t, router, "/api/matrix/1990-05-15")
	assert.Equal(t, http.StatusOK, reading.Code)

	metricsBody := get(t, router, "/metrics")
	require.Equal(t, http.StatusOK, metricsBody.Code)
	body := metricsBody.Body.String()
	assert.Contains(t, body, `destiny_matrix_calculations_total{operation="calculate",outcome="success"} 1`)
	assert.Contains(t, body, `route="/api/matrix/{birthdate}"`)
	assert.NotContains(t, body, "1990-05-15")
}

func TestRouterWithoutMetrics(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Metrics.Enabled = false
	router := newTestApp(t, cfg).setupRouter()

	assert.Equal(t, http.StatusNotFound, get(t, router, "/metrics").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/health").Code)
}

func TestThresholdsReachInterpreter(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Matrix.StrongThreshold = 2
	router := newTestApp(t, cfg).setupRouter()

	w := get(t, router, "/api/matrix/1990-05-15")
	require.Equal(t, http.StatusOK, w.Code)

	defaults := get(t, newTestApp(t, testConfig()).setupRouter(), "/api/matrix/1990-05-15")
	require.Equal(t, http.StatusOK, defaults.Code)

	// 6 and 8 occur twice in this matrix: strong at threshold 2, not at 3.
	assert.NotEqual(t, defaults.Body.String(), w.Body.String())
}

// TestRunShutsDownOnContextCancel starts the real listener on an ephemeral port.
func TestRunShutsDownOnContextCancel(t *testing.T) {
	app := newTestApp(t, testConfig())
	cleaned := false
	app.onCleanup(func() { cleaned = true })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.True(t, cleaned)
}

func TestLoadAppConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DESTINY_SERVER_PORT", "9191")

	cfg, err := loadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)

	t.Setenv("DESTINY_SERVER_LOG_LEVEL", "chatty")
	_, err = loadAppConfig()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to load configuration"))
}
