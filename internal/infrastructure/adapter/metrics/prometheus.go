package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "invest_dashboard"

// Prometheus records dashboard metrics on its own registry
type Prometheus struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	upstreamCalls    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec

	cacheEvents    *prometheus.CounterVec
	sessionsActive prometheus.Gauge
}

var _ core.MetricsRecorder = (*Prometheus)(nil)

// NewPrometheus creates and registers every collector
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight page requests.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of page requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of page requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "route"}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "calls_total",
			Help:      "Total number of platform API calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "call_duration_seconds",
			Help:      "Duration of platform API calls.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10),
		}, []string{"endpoint"}),
		cacheEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "query_cache",
			Name:      "events_total",
			Help:      "Query cache lookups by outcome (hit, miss, dedup).",
		}, []string{"event"}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "query_cache",
			Name:      "sessions",
			Help:      "Number of sessions holding a query cache.",
		}),
	}

	p.registry.MustRegister(
		p.httpInFlight,
		p.httpRequests,
		p.httpDuration,
		p.upstreamCalls,
		p.upstreamDuration,
		p.cacheEvents,
		p.sessionsActive,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return p
}

// Registry exposes the registry for tests
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// RegisterDB exports connection pool statistics of the session database
func (p *Prometheus) RegisterDB(db *sql.DB, name string) error {
	return p.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler returns an HTTP handler exposing the registered metrics
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// RequestStarted increments the in-flight gauge and returns the matching completion func
func (p *Prometheus) RequestStarted() func(method, route string, status int, duration time.Duration) {
	p.httpInFlight.Inc()
	return func(method, route string, status int, duration time.Duration) {
		p.httpInFlight.Dec()
		if route == "" {
			route = "unmatched"
		}
		p.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
		p.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
	}
}

// ObserveUpstream implements core.MetricsRecorder
func (p *Prometheus) ObserveUpstream(endpoint, outcome string, duration time.Duration) {
	p.upstreamCalls.WithLabelValues(endpoint, outcome).Inc()
	p.upstreamDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// CacheEvent implements core.MetricsRecorder
func (p *Prometheus) CacheEvent(event string) {
	p.cacheEvents.WithLabelValues(event).Inc()
}

// SessionsActive implements core.MetricsRecorder
func (p *Prometheus) SessionsActive(n int) {
	p.sessionsActive.Set(float64(n))
}
