// Package metrics exposes the Prometheus instruments for matrix calculation
// and the HTTP surface. All recording methods are safe on a nil *Metrics so
// callers can run without instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for CalculationOutcome.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Metrics provides observability for the matrix service and HTTP API.
type Metrics struct {
	// Calculation outcomes by operation and outcome
	CalculationOutcome *prometheus.CounterVec

	// Full calculation latency by operation
	CalculationLatency *prometheus.HistogramVec

	// Pattern insights emitted by kind
	InsightsEmitted *prometheus.CounterVec

	// Number of birth dates per batch request
	BatchSize prometheus.Histogram

	// HTTP request latency by method, route pattern and status
	RequestLatency *prometheus.HistogramVec
}

// New creates a Metrics instance registered against reg. A nil reg falls back
// to prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		CalculationOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "destiny_matrix_calculations_total",
			Help: "Total matrix calculations by operation and outcome",
		}, []string{"operation", "outcome"}), // operation: "calculate", "interpret", "batch"

		CalculationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "destiny_matrix_calculation_duration_seconds",
			Help:    "Duration of matrix derivation and interpretation",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.05, 0.25},
		}, []string{"operation"}),

		InsightsEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "destiny_matrix_insights_total",
			Help: "Pattern insights produced by kind",
		}, []string{"kind"}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "destiny_matrix_batch_size",
			Help:    "Number of birth dates submitted per batch request",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000},
		}),

		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "destiny_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by method, route and status code",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// IncrementOutcome records a calculation outcome.
func (m *Metrics) IncrementOutcome(operation, outcome string) {
	if m != nil {
		m.CalculationOutcome.WithLabelValues(operation, outcome).Inc()
	}
}

// ObserveCalculation records the duration of one calculation.
func (m *Metrics) ObserveCalculation(operation string, d time.Duration) {
	if m != nil {
		m.CalculationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// AddInsight counts one emitted insight of the given kind.
func (m *Metrics) AddInsight(kind string) {
	if m != nil {
		m.InsightsEmitted.WithLabelValues(kind).Inc()
	}
}

// ObserveBatchSize records how many items a batch request carried.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}

// ObserveRequest records the duration of an HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m != nil {
		m.RequestLatency.WithLabelValues(method, route, status).Observe(d.Seconds())
	}
}
