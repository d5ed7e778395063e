// Package metrics exposes Prometheus collectors for searches, provider calls and HTTP traffic.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flight_assistant"

// Metrics holds every collector the service records.
type Metrics struct {
	SearchesTotal    *prometheus.CounterVec
	OffersNormalized prometheus.Counter
	OffersSkipped    prometheus.Counter
	BookingsTotal    prometheus.Counter
	RateLimitWaits   prometheus.Counter

	ProviderRequests *prometheus.CounterVec
	ProviderLatency  *prometheus.HistogramVec
	ProviderRetries  *prometheus.CounterVec

	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the collectors and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		SearchesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Flight searches by outcome",
		}, []string{"outcome"}),
		OffersNormalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_normalized_total",
			Help:      "Provider offers turned into summaries",
		}),
		OffersSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_skipped_total",
			Help:      "Provider offers dropped as malformed",
		}),
		BookingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mock_bookings_total",
			Help:      "Mock orders created",
		}),
		RateLimitWaits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_ratelimit_waits_total",
			Help:      "Provider calls that had to wait for the client-side rate limiter",
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Provider calls by operation and result",
		}, []string{"provider", "operation", "result"}),
		ProviderLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "provider_latency_seconds",
			Help:      "Provider call latency including retries",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2, 4, 8, 15},
		}, []string{"provider", "operation"}),
		ProviderRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_retries_total",
			Help:      "Provider call retries",
		}, []string{"provider", "operation"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		registry: reg,
	}

	reg.MustRegister(
		m.SearchesTotal,
		m.OffersNormalized,
		m.OffersSkipped,
		m.BookingsTotal,
		m.RateLimitWaits,
		m.ProviderRequests,
		m.ProviderLatency,
		m.ProviderRetries,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

// NewNop returns Metrics backed by a private registry, for tests and disabled metrics.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

func (m *Metrics) IncSearch(outcome string) { m.SearchesTotal.WithLabelValues(outcome).Inc() }

func (m *Metrics) AddOffers(normalized, skipped int) {
	m.OffersNormalized.Add(float64(normalized))
	m.OffersSkipped.Add(float64(skipped))
}

func (m *Metrics) IncBookings()       { m.BookingsTotal.Inc() }
func (m *Metrics) IncRateLimitWaits() { m.RateLimitWaits.Inc() }

// ObserveProviderCall records one logical provider call.
func (m *Metrics) ObserveProviderCall(provider, operation string, err error, seconds float64) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ProviderRequests.WithLabelValues(provider, operation, result).Inc()
	m.ProviderLatency.WithLabelValues(provider, operation).Observe(seconds)
}

func (m *Metrics) IncProviderRetry(provider, operation string) {
	m.ProviderRetries.WithLabelValues(provider, operation).Inc()
}

func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
