package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/model"
	"github.com/go-redis/redis/v8"
)

// idleIndexKey is the sorted set of session IDs scored by last activity
const idleIndexKey = "idle"

var _ persistence.SessionRepository = (*RedisSessionRepository)(nil)

// RedisSessionRepository stores each session as a JSON value that expires after the idle timeout
type RedisSessionRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger core.Logger
}

// NewRedisSessionRepository creates a store. ttl should match the session idle timeout.
func NewRedisSessionRepository(client *redis.Client, prefix string, ttl time.Duration, logger core.Logger) *RedisSessionRepository {
	return &RedisSessionRepository{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		logger: logger,
	}
}

func (r *RedisSessionRepository) key(id string) string {
	return r.prefix + id
}

func (r *RedisSessionRepository) indexKey() string {
	return r.prefix + idleIndexKey
}

func (r *RedisSessionRepository) storeError(operation string, err error, sessionID string) error {
	r.logger.Error(fmt.Sprintf("Redis error when %s", operation), map[string]any{
		"session_id": sessionID,
		"error":      err,
	})
	return fmt.Errorf("%w: %s: %v", errs.ErrSessionStore, operation, err)
}

// Get loads a session by ID
func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errs.ErrSessionNotFound
	}
	if err != nil {
		return nil, r.storeError("getting session", err, id)
	}

	var row model.Session
	if err := json.Unmarshal(data, &row); err != nil {
		r.logger.Warn("Discarding unreadable session", map[string]any{"session_id": id, "error": err})
		return nil, errs.ErrSessionNotFound
	}
	session, err := row.ToEntity()
	if err != nil {
		r.logger.Warn("Discarding unreadable session", map[string]any{"session_id": id, "error": err})
		return nil, errs.ErrSessionNotFound
	}
	return session, nil
}

// Save writes the session and refreshes its expiry
func (r *RedisSessionRepository) Save(ctx context.Context, session *entity.Session) error {
	row, err := model.SessionFromEntity(session)
	if err != nil {
		return err
	}
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(session.ID), data, r.ttl)
		pipe.ZAdd(ctx, r.indexKey(), &redis.Z{
			Score:  float64(session.LastSeenAt.Unix()),
			Member: session.ID,
		})
		return nil
	})
	if err != nil {
		return r.storeError("saving session", err, session.ID)
	}
	return nil
}

// Delete removes a session
func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.key(id))
		pipe.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return r.storeError("deleting session", err, id)
	}
	return nil
}

// DeleteIdleBefore removes sessions last seen before cutoff.
// IDs whose value already expired are still returned so their caches can be dropped.
func (r *RedisSessionRepository) DeleteIdleBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	ids, err := r.client.ZRangeByScore(ctx, r.indexKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(cutoff.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, r.storeError("listing idle sessions", err, "")
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	members := make([]any, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
		members[i] = id
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, keys...)
		pipe.ZRem(ctx, r.indexKey(), members...)
		return nil
	})
	if err != nil {
		return nil, r.storeError("deleting idle sessions", err, "")
	}
	return ids, nil
}

// Ping checks the connection
func (r *RedisSessionRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSessionStore, err)
	}
	return nil
}
