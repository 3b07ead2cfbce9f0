package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// DefaultRetry is the number of extra attempts for retryable failures
const DefaultRetry = 3

// ErrDisabled is returned by Fetch when the query's prerequisite is missing
var ErrDisabled = errors.New("query disabled")

// Key identifies a cached query, e.g. Key{"wallet", userID}
type Key []string

// String joins the key into a map key
func (k Key) String() string {
	return strings.Join(k, "\x1f")
}

// HasPrefix reports whether k starts with every element of prefix
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Options control one query
type Options struct {
	Enabled bool
	// StaleTime is how long a stored value is served without refetching.
	// Zero uses the cache default.
	StaleTime time.Duration
	// Retry is the number of extra attempts after a retryable failure
	Retry int
}

// Defaults is an enabled query with the default retry count
var Defaults = Options{Enabled: true, Retry: DefaultRetry}

// When disables the query unless cond holds
func (o Options) When(cond bool) Options {
	o.Enabled = o.Enabled && cond
	return o
}

// Stale sets the stale time
func (o Options) Stale(d time.Duration) Options {
	o.StaleTime = d
	return o
}

// NoRetry disables retries
func (o Options) NoRetry() Options {
	o.Retry = 0
	return o
}

// Fetcher loads the value for a key
type Fetcher func(ctx context.Context) (any, error)

// Cache stores query results for one session
type Cache interface {
	// Fetch returns the stored value when fresh, otherwise calls fn.
	// Concurrent callers for the same key share one call. Errors are never stored.
	Fetch(ctx context.Context, key Key, opts Options, fn Fetcher) (any, error)
	// Peek returns the stored value regardless of freshness
	Peek(key Key) (any, bool)
	// SetData replaces the stored value for key
	SetData(key Key, value any)
	// Invalidate removes every entry under prefix and returns how many were removed
	Invalidate(prefix Key) int
	// Clear removes everything
	Clear()
}

// Provider hands out one Cache per session
type Provider interface {
	For(sessionID string) Cache
	Drop(sessionID string)
}

// ForContext returns the cache of the session on ctx
func ForContext(ctx context.Context, p Provider) Cache {
	if s := entity.SessionFromContext(ctx); s != nil {
		return p.For(s.ID)
	}
	return p.For("")
}

// Get is the typed form of Cache.Fetch
func Get[T any](ctx context.Context, c Cache, key Key, opts Options, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.Fetch(ctx, key, opts, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("query %v holds %T", key, v)
	}
	return typed, nil
}

// Retryable reports whether a failed fetch may be attempted again.
// Only transport failures and 5xx responses qualify.
func Retryable(err error) bool {
	var apiErr *errs.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Kind {
	case errs.KindNetwork, errs.KindTimeout, errs.KindServer:
		return true
	default:
		return false
	}
}

// Run calls fn up to 1+retry times, stopping at the first success or non-retryable error
func Run(ctx context.Context, retry int, fn Fetcher) (any, error) {
	var lastErr error
	for attempt := 0; attempt <= retry; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if !Retryable(err) {
			break
		}
	}
	return nil, lastErr
}
