package common

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
)

// LongStale is used for data that rarely changes (user profile, settings, deposit address)
const LongStale = 5 * time.Minute

// Scope is the signed-in user and query cache of one request
type Scope struct {
	UserID string
	Cache  query.Cache
}

// ScopeFrom reads the session on ctx
func ScopeFrom(ctx context.Context, caches query.Provider) Scope {
	scope := Scope{Cache: query.ForContext(ctx, caches)}
	if s := entity.SessionFromContext(ctx); s.HasToken() {
		scope.UserID = s.UserID
	}
	return scope
}

// Fetch runs a user-scoped query. It is disabled until the session carries a user ID.
func Fetch[T any](ctx context.Context, scope Scope, key query.Key, opts query.Options, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := query.Get(ctx, scope.Cache, key, opts.When(scope.UserID != ""), fn)
	if errors.Is(err, query.ErrDisabled) {
		return v, errs.ErrUnauthenticated
	}
	return v, err
}

// Invalidate removes every key from the scope's cache
func (s Scope) Invalidate(keys ...query.Key) {
	for _, key := range keys {
		s.Cache.Invalidate(key)
	}
}

// RequireUser fails when the session has no signed-in user
func (s Scope) RequireUser() error {
	if s.UserID == "" {
		return errs.ErrUnauthenticated
	}
	return nil
}
