// Package metrics exposes prometheus instrumentation for the decision pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the pipeline collectors. All fields are registered against
// the registry passed to New, so tests can use isolated registries.
type Metrics struct {
	registry *prometheus.Registry

	classifications *prometheus.CounterVec
	fallbacks       prometheus.Counter
	routingResults  *prometheus.CounterVec
	stageDuration   *prometheus.HistogramVec
}

// New creates and registers the pipeline metrics on the given registry.
// A nil registry creates a private one.
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: registry,
		classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "caddy",
			Subsystem: "pipeline",
			Name:      "classifications_total",
			Help:      "Classification verdicts by tier and source (online/offline).",
		}, []string{"verdict", "source"}),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "caddy",
			Subsystem: "pipeline",
			Name:      "offline_fallbacks_total",
			Help:      "Times the online classifier was unavailable and the offline matcher ran.",
		}),
		routingResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "caddy",
			Subsystem: "pipeline",
			Name:      "routing_results_total",
			Help:      "Routing results by variant.",
		}, []string{"variant"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "caddy",
			Subsystem: "pipeline",
			Name:      "stage_duration_seconds",
			Help:      "Wall time per pipeline stage.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 2.5, 5},
		}, []string{"stage"}),
	}

	registry.MustRegister(m.classifications, m.fallbacks, m.routingResults, m.stageDuration)
	return m
}

// Registry returns the underlying registry for HTTP exposure.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveClassification records a classification verdict.
func (m *Metrics) ObserveClassification(verdict, source string) {
	m.classifications.WithLabelValues(verdict, source).Inc()
}

// ObserveFallback records an offline fallback.
func (m *Metrics) ObserveFallback() {
	m.fallbacks.Inc()
}

// ObserveRoutingResult records the emitted result variant.
func (m *Metrics) ObserveRoutingResult(variant string) {
	m.routingResults.WithLabelValues(variant).Inc()
}

// ObserveStage records the duration of one pipeline stage.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	m.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}
