package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	selectSessionSQL = `SELECT id, token, user_id, payload, created_at, last_seen_at FROM dashboard_sessions WHERE id = ?`

	upsertSessionSQL = `INSERT INTO dashboard_sessions (id, token, user_id, payload, created_at, last_seen_at) ` +
		`VALUES (?, ?, ?, ?, ?, ?) ` +
		`ON CONFLICT (id) DO UPDATE SET token = EXCLUDED.token, user_id = EXCLUDED.user_id, ` +
		`payload = EXCLUDED.payload, last_seen_at = EXCLUDED.last_seen_at`

	deleteSessionSQL = `DELETE FROM dashboard_sessions WHERE id = ?`

	deleteIdleSessionsSQL = `DELETE FROM dashboard_sessions WHERE last_seen_at < ? RETURNING id`
)

var _ persistence.SessionRepository = (*SessionRepository)(nil)

// SessionRepository implements SessionRepository on postgres through GORM
type SessionRepository struct {
	db      *gorm.DB
	timeout time.Duration
	logger  core.Logger
}

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(db *gorm.DB, timeout time.Duration, logger core.Logger) *SessionRepository {
	return &SessionRepository{
		db:      db,
		timeout: timeout,
		logger:  logger,
	}
}

func (r *SessionRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// handleDatabaseError standardizes database error handling
func (r *SessionRepository) handleDatabaseError(operation string, err error, sessionID string) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"session_id": sessionID,
		"error":      err,
	})
	return fmt.Errorf("%w: %s: %v", errs.ErrSessionStore, operation, err)
}

// Get loads a session by ID
func (r *SessionRepository) Get(ctx context.Context, id string) (*entity.Session, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row model.Session
	err := r.db.WithContext(ctx).Raw(selectSessionSQL, id).Row().
		Scan(&row.ID, &row.Token, &row.UserID, &row.Payload, &row.CreatedAt, &row.LastSeenAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.ErrSessionNotFound
	}
	if err != nil {
		return nil, r.handleDatabaseError("getting session", err, id)
	}

	session, err := row.ToEntity()
	if err != nil {
		// An unreadable payload is treated as a missing session so the browser gets a fresh one
		r.logger.Warn("Discarding unreadable session", map[string]any{
			"session_id": id,
			"error":      err,
		})
		return nil, errs.ErrSessionNotFound
	}
	return session, nil
}

// Save creates or replaces a session
func (r *SessionRepository) Save(ctx context.Context, session *entity.Session) error {
	row, err := model.SessionFromEntity(session)
	if err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Exec(upsertSessionSQL,
		row.ID, row.Token, row.UserID, row.Payload, row.CreatedAt, row.LastSeenAt)
	if result.Error != nil {
		return r.handleDatabaseError("saving session", result.Error, session.ID)
	}
	return nil
}

// Delete removes a session
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if err := r.db.WithContext(ctx).Exec(deleteSessionSQL, id).Error; err != nil {
		return r.handleDatabaseError("deleting session", err, id)
	}
	return nil
}

// DeleteIdleBefore removes sessions last seen before cutoff and returns their IDs
func (r *SessionRepository) DeleteIdleBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.WithContext(ctx).Raw(deleteIdleSessionsSQL, cutoff).Rows()
	if err != nil {
		return nil, r.handleDatabaseError("deleting idle sessions", err, "")
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, r.handleDatabaseError("reading idle session ids", err, "")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, r.handleDatabaseError("reading idle session ids", err, "")
	}
	return ids, nil
}

// Ping checks the database connection
func (r *SessionRepository) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	db, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSessionStore, err)
	}
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrSessionStore, err)
	}
	return nil
}
