// Package metrics provides Prometheus metrics for the planner daemon,
// following the RED method (rate, errors, duration) for the /v1/plan
// request path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every Prometheus collector the daemon registers.
type Metrics struct {
	registry *prometheus.Registry

	PlanTotal    *prometheus.CounterVec // status: ok, input_parse (bad body/filters), unknown, or a planner ErrorKind (InputParse, DuplicateName, CyclicCurriculum)
	PlanDuration prometheus.Histogram

	ScheduleCandidates prometheus.Histogram // ScheduleCount per returned response
	PartialResults     prometheus.Counter   // responses with Diagnostics.PartialResult set
	LivenessFallbacks  prometheus.Counter   // responses with Diagnostics.LivenessFallback set
}

// New creates a Metrics instance with all collectors registered against
// registry.
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		registry: registry,

		PlanTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "plan_requests_total",
				Help: "Total /v1/plan requests by outcome",
			},
			[]string{"status"},
		),

		PlanDuration: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name: "plan_duration_seconds",
				Help: "Plan() wall-clock duration in seconds",
				// The clique search's soft deadline is 500ms; most calls
				// should land well under it.
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2},
			},
		),

		ScheduleCandidates: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "plan_schedules_returned",
				Help:    "Number of schedules returned per successful plan",
				Buckets: []float64{0, 1, 2, 5, 10},
			},
		),

		PartialResults: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "plannerd_partial_results_total",
				Help: "Total plans that hit the exhaustive-search time budget",
			},
		),

		LivenessFallbacks: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "plannerd_liveness_fallbacks_total",
				Help: "Total plans that triggered the filter liveness guard",
			},
		),
	}
}

// Registry returns the registry collectors were registered against, for use
// with promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordPlan records the outcome and duration of one Plan call.
func (m *Metrics) RecordPlan(status string, durationSeconds float64) {
	m.PlanTotal.WithLabelValues(status).Inc()
	m.PlanDuration.Observe(durationSeconds)
}
