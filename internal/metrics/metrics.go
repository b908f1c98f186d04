// Package metrics holds the Prometheus collectors for the API and the analytics engine.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wellbeing"

// Run outcomes.
const (
	OutcomeSuccess          = "success"
	OutcomeStoreUnavailable = "store_unavailable"
	OutcomeError            = "error"
)

// Metrics owns a private registry so tests can build as many as they like.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	analyticsRuns    *prometheus.CounterVec
	analyticsLatency prometheus.Histogram
	rejectedPayloads *prometheus.CounterVec
	insightsFired    *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status_code"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		analyticsRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analytics_runs_total",
				Help:      "Analytics engine runs by outcome",
			},
			[]string{"outcome"},
		),
		analyticsLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analytics_run_duration_seconds",
				Help:      "Analytics run duration in seconds",
				Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
		),
		rejectedPayloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "game_payloads_rejected_total",
				Help:      "Game sessions excluded from a run because their payload was malformed",
			},
			[]string{"game_family"},
		),
		insightsFired: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "insights_fired_total",
				Help:      "Insights produced by the rule engine",
			},
			[]string{"insight_type", "severity"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshot_cache_lookups_total",
				Help:      "Snapshot cache lookups by result",
			},
			[]string{"result"},
		),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.analyticsRuns,
		m.analyticsLatency,
		m.rejectedPayloads,
		m.insightsFired,
		m.cacheLookups,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRun(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.analyticsRuns.WithLabelValues(outcome).Inc()
	m.analyticsLatency.Observe(elapsed.Seconds())
}

func (m *Metrics) PayloadRejected(family string) {
	if m == nil {
		return
	}
	m.rejectedPayloads.WithLabelValues(family).Inc()
}

func (m *Metrics) InsightFired(insightType, severity string) {
	if m == nil {
		return
	}
	m.insightsFired.WithLabelValues(insightType, severity).Inc()
}

func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}
