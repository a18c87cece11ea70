// Package metrics exposes Prometheus instrumentation and runtime memory
// sampling for solve runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Solve outcome label values for the solves-total counter.
const (
	OutcomeConverged    = "converged"
	OutcomeNotConverged = "not_converged"
	OutcomeDegenerate   = "degenerate"
	OutcomeInvalid      = "invalid"
	OutcomeCanceled     = "canceled"
)

// Metrics bundles the Prometheus collectors for the application. Each
// instance owns a private registry so repeated construction (e.g. in tests)
// never trips duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	solvesTotal   *prometheus.CounterVec
	iterations    prometheus.Histogram
	solveDuration prometheus.Histogram
}

// NewMetrics creates and registers the application collectors.
//
// Returns:
//   - *Metrics: The ready-to-use metrics bundle.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		solvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mullroot_solves_total",
			Help: "Total number of solve runs by terminal outcome.",
		}, []string{"outcome"}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mullroot_iterations",
			Help:    "Iterations used per solve run.",
			Buckets: prometheus.ExponentialBuckets(2, 2, 12),
		}),
		solveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mullroot_solve_duration_seconds",
			Help:    "Wall-clock duration of solve runs.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
	}

	registry.MustRegister(m.solvesTotal, m.iterations, m.solveDuration)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// ObserveSolve records one completed solve run.
//
// Parameters:
//   - outcome: One of the Outcome* label values.
//   - iterationsUsed: The solver loop index at termination.
//   - duration: The wall-clock duration of the run.
func (m *Metrics) ObserveSolve(outcome string, iterationsUsed int, duration time.Duration) {
	m.solvesTotal.WithLabelValues(outcome).Inc()
	if iterationsUsed > 0 {
		m.iterations.Observe(float64(iterationsUsed))
	}
	m.solveDuration.Observe(duration.Seconds())
}

// Handler returns the HTTP handler serving the Prometheus exposition format
// for this bundle's registry.
//
// Returns:
//   - http.Handler: The /metrics endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}
