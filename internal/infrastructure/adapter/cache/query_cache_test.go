package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	timeadapter "github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/time"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingMetrics struct {
	core.NoopMetrics
	mu     sync.Mutex
	events map[string]int
}

func (m *countingMetrics) CacheEvent(event string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.events == nil {
		m.events = map[string]int{}
	}
	m.events[event]++
}

func (m *countingMetrics) count(event string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.events[event]
}

func newTestCache() (*QueryCache, *timeadapter.FixedTimeProvider, *countingMetrics) {
	clock := timeadapter.NewFixedTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	metrics := &countingMetrics{}
	return NewQueryCache(10*time.Second, clock, metrics, logger.NewNoopLogger()), clock, metrics
}

func TestQueryCacheFetch(t *testing.T) {
	ctx := context.Background()
	key := query.Key{"user", "u-1"}

	t.Run("should serve fresh entries without refetching", func(t *testing.T) {
		// Arrange
		c, clock, metrics := newTestCache()
		calls := 0
		fn := func(context.Context) (any, error) { calls++; return calls, nil }

		// Act
		first, err := c.Fetch(ctx, key, query.Defaults, fn)
		require.NoError(t, err)
		clock.Advance(5 * time.Second)
		second, err := c.Fetch(ctx, key, query.Defaults, fn)
		require.NoError(t, err)

		// Assert
		assert.Equal(t, 1, first)
		assert.Equal(t, 1, second)
		assert.Equal(t, 1, calls)
		assert.Equal(t, 1, metrics.count(core.CacheHit))
	})

	t.Run("should refetch after the stale time", func(t *testing.T) {
		c, clock, _ := newTestCache()
		calls := 0
		fn := func(context.Context) (any, error) { calls++; return calls, nil }
		opts := query.Defaults.Stale(time.Minute)

		_, _ = c.Fetch(ctx, key, opts, fn)
		clock.Advance(59 * time.Second)
		v, _ := c.Fetch(ctx, key, opts, fn)
		assert.Equal(t, 1, v)

		clock.Advance(2 * time.Second)
		v, _ = c.Fetch(ctx, key, opts, fn)
		assert.Equal(t, 2, v)
	})

	t.Run("should never store errors", func(t *testing.T) {
		c, _, _ := newTestCache()
		calls := 0
		fail := func(context.Context) (any, error) { calls++; return nil, errors.New("boom") }

		_, err1 := c.Fetch(ctx, key, query.Defaults, fail)
		_, err2 := c.Fetch(ctx, key, query.Defaults, fail)

		assert.Error(t, err1)
		assert.Error(t, err2)
		assert.Equal(t, 2, calls)
		_, ok := c.Peek(key)
		assert.False(t, ok)
	})

	t.Run("should never call the fetcher for disabled queries", func(t *testing.T) {
		c, _, _ := newTestCache()

		_, err := c.Fetch(ctx, key, query.Defaults.When(false), func(context.Context) (any, error) {
			t.Fatal("fetcher must not run")
			return nil, nil
		})

		assert.ErrorIs(t, err, query.ErrDisabled)
	})

	t.Run("should share one fetch between concurrent callers", func(t *testing.T) {
		// Arrange
		c, _, metrics := newTestCache()
		var calls int32
		release := make(chan struct{})
		fn := func(context.Context) (any, error) {
			atomic.AddInt32(&calls, 1)
			<-release
			return "value", nil
		}

		// Act
		var wg sync.WaitGroup
		results := make([]any, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = c.Fetch(ctx, key, query.Defaults, fn)
			}(i)
		}
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		// Assert
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
		for _, r := range results {
			assert.Equal(t, "value", r)
		}
		assert.Positive(t, metrics.count(core.CacheDedup))
	})
}

func TestQueryCacheInvalidate(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestCache()
	value := func(v string) query.Fetcher {
		return func(context.Context) (any, error) { return v, nil }
	}

	_, _ = c.Fetch(ctx, query.Key{"transfers", "sent", "u-1"}, query.Defaults, value("sent"))
	_, _ = c.Fetch(ctx, query.Key{"transfers", "received", "u-1"}, query.Defaults, value("received"))
	_, _ = c.Fetch(ctx, query.Key{"user", "u-1"}, query.Defaults, value("user"))

	t.Run("should remove every key under the prefix", func(t *testing.T) {
		removed := c.Invalidate(query.Key{"transfers"})

		assert.Equal(t, 2, removed)
		assert.Equal(t, 1, c.Len())
		_, ok := c.Peek(query.Key{"user", "u-1"})
		assert.True(t, ok)
	})

	t.Run("should refetch after invalidation", func(t *testing.T) {
		v, err := c.Fetch(ctx, query.Key{"transfers", "sent", "u-1"}, query.Defaults, value("fresh"))

		require.NoError(t, err)
		assert.Equal(t, "fresh", v)
	})

	t.Run("should patch data in place", func(t *testing.T) {
		c.SetData(query.Key{"wallet", "u-1"}, "created")

		v, err := c.Fetch(ctx, query.Key{"wallet", "u-1"}, query.Defaults, value("from network"))

		require.NoError(t, err)
		assert.Equal(t, "created", v)
	})

	t.Run("should clear everything", func(t *testing.T) {
		c.Clear()
		assert.Zero(t, c.Len())
	})
}

func TestManager(t *testing.T) {
	clock := timeadapter.NewFixedTimeProvider(time.Now())

	t.Run("should keep caches separate per session and drop on logout", func(t *testing.T) {
		// Arrange
		m, err := NewManager(10, time.Minute, clock, core.NoopMetrics{}, logger.NewNoopLogger())
		require.NoError(t, err)
		m.For("a").SetData(query.Key{"user", "1"}, "alice")

		// Act
		_, inB := m.For("b").Peek(query.Key{"user", "1"})
		_, inA := m.For("a").Peek(query.Key{"user", "1"})
		m.Drop("a")
		_, afterDrop := m.For("a").Peek(query.Key{"user", "1"})

		// Assert
		assert.False(t, inB)
		assert.True(t, inA)
		assert.False(t, afterDrop)
	})

	t.Run("should evict the least recently used session", func(t *testing.T) {
		m, err := NewManager(2, time.Minute, clock, core.NoopMetrics{}, logger.NewNoopLogger())
		require.NoError(t, err)

		m.For("a").SetData(query.Key{"k"}, 1)
		m.For("b")
		m.For("c")

		assert.Equal(t, 2, m.Len())
		_, ok := m.For("a").Peek(query.Key{"k"})
		assert.False(t, ok)
	})
}
