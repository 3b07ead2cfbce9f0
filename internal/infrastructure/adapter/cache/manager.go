package cache

import (
	"sync"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Manager keeps one QueryCache per session in a bounded LRU
type Manager struct {
	mu           sync.Mutex
	caches       *lru.Cache[string, *QueryCache]
	defaultStale time.Duration
	clock        core.TimeProvider
	metrics      core.MetricsRecorder
	logger       core.Logger
}

// NewManager creates a manager holding at most maxSessions caches
func NewManager(maxSessions int, defaultStale time.Duration, clock core.TimeProvider, metrics core.MetricsRecorder, logger core.Logger) (*Manager, error) {
	m := &Manager{
		defaultStale: defaultStale,
		clock:        clock,
		metrics:      metrics,
		logger:       logger,
	}

	caches, err := lru.NewWithEvict(maxSessions, func(sessionID string, _ *QueryCache) {
		logger.Debug("Evicted session query cache", map[string]any{"session_id": sessionID})
	})
	if err != nil {
		return nil, err
	}
	m.caches = caches
	return m, nil
}

// For implements query.Provider
func (m *Manager) For(sessionID string) query.Cache {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.caches.Get(sessionID); ok {
		return c
	}
	c := NewQueryCache(m.defaultStale, m.clock, m.metrics, m.logger)
	m.caches.Add(sessionID, c)
	m.metrics.SessionsActive(m.caches.Len())
	return c
}

// Drop implements query.Provider
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.caches.Peek(sessionID); ok {
		c.Clear()
	}
	m.caches.Remove(sessionID)
	m.metrics.SessionsActive(m.caches.Len())
}

// Len returns the number of sessions with a cache
func (m *Manager) Len() int {
	return m.caches.Len()
}
