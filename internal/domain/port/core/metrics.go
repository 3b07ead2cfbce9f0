package core

import "time"

// Cache events reported to the metrics recorder
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheDedup = "dedup"
)

// MetricsRecorder receives measurements from the domain and the API client
type MetricsRecorder interface {
	// ObserveUpstream records one platform API call
	ObserveUpstream(endpoint, outcome string, duration time.Duration)
	// CacheEvent counts a query cache lookup outcome
	CacheEvent(event string)
	// SessionsActive reports the number of cached sessions
	SessionsActive(n int)
}

// NoopMetrics discards all measurements
type NoopMetrics struct{}

func (NoopMetrics) ObserveUpstream(string, string, time.Duration) {}
func (NoopMetrics) CacheEvent(string)                             {}
func (NoopMetrics) SessionsActive(int)                            {}
