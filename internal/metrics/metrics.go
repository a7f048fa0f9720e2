// Package metrics provides Prometheus metrics for the portfolio server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the server.
// All methods are safe to call on a nil *Metrics.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Assistant metrics
	AskOutcomesTotal      *prometheus.CounterVec
	CompletionDuration    prometheus.Histogram
	CompletionTokensTotal *prometheus.CounterVec
	FallbackRepliesTotal  prometheus.Counter
}

// New creates all metrics on a private registry, so tests can build as many as they like.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "portfolio_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "portfolio_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		AskOutcomesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_ask_outcomes_total",
				Help: "Relay outcomes by kind (ok, validation, configuration, upstream, internal)",
			},
			[]string{"outcome"},
		),
		CompletionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "portfolio_completion_duration_seconds",
				Help:    "Duration of completion API calls in seconds",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 16},
			},
		),
		CompletionTokensTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "portfolio_completion_tokens_total",
				Help: "Tokens consumed by completion calls",
			},
			[]string{"type"},
		),
		FallbackRepliesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "portfolio_fallback_replies_total",
				Help: "Completion calls answered with the fallback text",
			},
		),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveRequest records a finished HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RequestStarted and RequestFinished track in-flight requests.
func (m *Metrics) RequestStarted() {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.Inc()
}

func (m *Metrics) RequestFinished() {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.Dec()
}

// RecordAskOutcome counts one relay response by outcome label.
func (m *Metrics) RecordAskOutcome(outcome string) {
	if m == nil {
		return
	}
	m.AskOutcomesTotal.WithLabelValues(outcome).Inc()
}

// RecordCompletion records a successful completion call.
func (m *Metrics) RecordCompletion(d time.Duration, promptTokens, completionTokens int) {
	if m == nil {
		return
	}
	m.CompletionDuration.Observe(d.Seconds())
	m.CompletionTokensTotal.WithLabelValues("prompt").Add(float64(promptTokens))
	m.CompletionTokensTotal.WithLabelValues("completion").Add(float64(completionTokens))
}

func (m *Metrics) RecordFallback() {
	if m == nil {
		return
	}
	m.FallbackRepliesTotal.Inc()
}
