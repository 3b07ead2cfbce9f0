package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
	"golang.org/x/sync/singleflight"
)

type entry struct {
	key       query.Key
	value     any
	fetchedAt time.Time
}

// QueryCache is the in-memory query.Cache of one session
type QueryCache struct {
	mu      sync.Mutex
	entries map[string]*entry
	// epoch changes on every invalidation so in-flight fetches started earlier are not stored
	epoch uint64

	group        singleflight.Group
	defaultStale time.Duration
	clock        core.TimeProvider
	metrics      core.MetricsRecorder
	logger       core.Logger
}

// NewQueryCache creates an empty cache
func NewQueryCache(defaultStale time.Duration, clock core.TimeProvider, metrics core.MetricsRecorder, logger core.Logger) *QueryCache {
	return &QueryCache{
		entries:      make(map[string]*entry),
		defaultStale: defaultStale,
		clock:        clock,
		metrics:      metrics,
		logger:       logger,
	}
}

func (c *QueryCache) staleTime(opts query.Options) time.Duration {
	if opts.StaleTime > 0 {
		return opts.StaleTime
	}
	return c.defaultStale
}

// Fetch implements query.Cache
func (c *QueryCache) Fetch(ctx context.Context, key query.Key, opts query.Options, fn query.Fetcher) (any, error) {
	if !opts.Enabled {
		return nil, query.ErrDisabled
	}

	id := key.String()

	c.mu.Lock()
	if e, ok := c.entries[id]; ok && c.clock.Since(e.fetchedAt) < c.staleTime(opts) {
		c.mu.Unlock()
		c.metrics.CacheEvent(core.CacheHit)
		return e.value, nil
	}
	epoch := c.epoch
	c.mu.Unlock()

	c.metrics.CacheEvent(core.CacheMiss)

	v, err, shared := c.group.Do(id, func() (any, error) {
		// Shared callers must not be cancelled by the first caller leaving
		value, err := query.Run(context.WithoutCancel(ctx), opts.Retry, fn)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.epoch == epoch {
			c.entries[id] = &entry{key: key, value: value, fetchedAt: c.clock.Now()}
		}
		c.mu.Unlock()
		return value, nil
	})
	if shared {
		c.metrics.CacheEvent(core.CacheDedup)
	}
	if err != nil {
		c.logger.Debug("Query fetch failed", map[string]any{
			"key":   key,
			"error": err.Error(),
		})
		return nil, err
	}
	return v, nil
}

// Peek implements query.Cache
func (c *QueryCache) Peek(key query.Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key.String()]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// SetData implements query.Cache
func (c *QueryCache) SetData(key query.Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key.String()] = &entry{key: key, value: value, fetchedAt: c.clock.Now()}
}

// Invalidate implements query.Cache
func (c *QueryCache) Invalidate(prefix query.Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	removed := 0
	for id, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			delete(c.entries, id)
			removed++
		}
	}
	return removed
}

// Clear implements query.Cache
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.entries = make(map[string]*entry)
}

// Len returns the number of stored entries
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
