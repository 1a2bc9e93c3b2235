// Package metrics holds the process-wide Prometheus collectors. Collectors
// are owned by an explicit Metrics value created in main and passed to the
// components that increment them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles all sentiwatch collectors on one registry.
type Metrics struct {
	Registry *prometheus.Registry

	PredictTotal    *prometheus.CounterVec // outcome: model|fallback
	CircuitOpens    prometheus.Counter
	ItemsScraped    prometheus.Counter
	ItemsPersisted  prometheus.Counter
	ItemsDeduped    prometheus.Counter
	AlertsEmitted   *prometheus.CounterVec // kind, severity
	PipelinesTotal  *prometheus.CounterVec // state: succeeded|failed|cancelled
	PredictLatency  prometheus.Histogram
	ActivePipelines prometheus.Gauge
}

// New creates the collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		PredictTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sentiwatch_predict_total",
			Help: "Predictions served, by backend outcome.",
		}, []string{"outcome"}),
		CircuitOpens: factory.NewCounter(prometheus.CounterOpts{
			Name: "sentiwatch_circuit_opens_total",
			Help: "Times the model-service circuit transitioned to open.",
		}),
		ItemsScraped: factory.NewCounter(prometheus.CounterOpts{
			Name: "sentiwatch_items_scraped_total",
			Help: "Raw items fetched from the content source.",
		}),
		ItemsPersisted: factory.NewCounter(prometheus.CounterOpts{
			Name: "sentiwatch_items_persisted_total",
			Help: "Classifications inserted into the result store.",
		}),
		ItemsDeduped: factory.NewCounter(prometheus.CounterOpts{
			Name: "sentiwatch_items_deduped_total",
			Help: "Items skipped because an identical text hash was already stored.",
		}),
		AlertsEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sentiwatch_alerts_emitted_total",
			Help: "Alerts emitted by the evaluator.",
		}, []string{"kind", "severity"}),
		PipelinesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sentiwatch_pipelines_total",
			Help: "Pipelines finished, by terminal state.",
		}, []string{"state"}),
		PredictLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sentiwatch_predict_latency_seconds",
			Help:    "End-to-end latency of failsafe predictions.",
			Buckets: prometheus.DefBuckets,
		}),
		ActivePipelines: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sentiwatch_active_pipelines",
			Help: "Pipelines currently running.",
		}),
	}
}
