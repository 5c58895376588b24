package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/destiny-matrix/internal/api/middleware"
	"github.com/phrazzld/destiny-matrix/internal/api/shared"
	"github.com/phrazzld/destiny-matrix/internal/platform/logger"
	"github.com/phrazzld/destiny-matrix/internal/platform/metrics"
)

func TestTraceMiddleware(t *testing.T) {
	t.Parallel()

	var seen string
	handler := middleware.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = shared.GetTraceID(r.Context())
		logger.FromContext(r.Context()).Info("inside handler")
	}))

	t.Run("generates an ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.True(t, shared.ValidTraceID(seen))
		assert.Equal(t, seen, w.Header().Get(shared.TraceIDHeader))
	})

	t.Run("reuses a valid incoming ID", func(t *testing.T) {
		const incoming = "3f2c1a52-8a9e-4c1e-9d2b-6a1f7e0b5c44"
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(shared.TraceIDHeader, incoming)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, incoming, seen)
		assert.Equal(t, incoming, w.Header().Get(shared.TraceIDHeader))
	})

	t.Run("replaces an invalid incoming ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(shared.TraceIDHeader, "<script>")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, "<script>", seen)
		assert.True(t, shared.ValidTraceID(seen))
	})
}

func TestTraceMiddlewareLoggerCarriesTraceID(t *testing.T) {
	t.Parallel()

	logs, log := logger.NewTestLogger(t)
	handler := middleware.TraceMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Info("inside handler")
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	entries, err := logs.GetLogEntries()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	last := entries[len(entries)-1]
	assert.Equal(t, "inside handler", last["msg"])
	assert.Equal(t, w.Header().Get(shared.TraceIDHeader), last["trace_id"])
}

func TestMetricsMiddleware(t *testing.T) {
	t.Parallel()

	m := metrics.New(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(middleware.MetricsMiddleware(m))
	r.Get("/api/matrix/{birthdate}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/matrix/1990-05-15", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestLatency))

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(m.RequestLatency))
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)

	routes := map[string]string{}
	for _, metric := range families[0].GetMetric() {
		labels := map[string]string{}
		for _, lp := range metric.GetLabel() {
			labels[lp.GetName()] = lp.GetValue()
		}
		routes[labels["route"]] = labels["status"]
	}
	assert.Equal(t, map[string]string{
		"/api/matrix/{birthdate}": "418",
		"/ok":                     "200",
	}, routes)
}

func TestRequestLoggerRedactsPath(t *testing.T) {
	t.Parallel()

	logs, log := logger.NewTestLogger(t)
	handler := middleware.RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/matrix/1990-05-15", nil)
	req = req.WithContext(logger.WithLogger(req.Context(), log))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries, err := logs.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "request completed", entries[0]["msg"])
	assert.EqualValues(t, http.StatusAccepted, entries[0]["status"])
	assert.NotContains(t, logs.String(), "1990-05-15")
}
