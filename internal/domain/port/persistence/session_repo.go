package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// SessionRepository stores browser sessions
type SessionRepository interface {
	// Get loads a session by ID
	//
	// Possible errors:
	// - ErrSessionNotFound: If no session is stored under id
	Get(ctx context.Context, id string) (*entity.Session, error)

	// Save creates or replaces a session
	Save(ctx context.Context, session *entity.Session) error

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error

	// DeleteIdleBefore removes sessions last seen before cutoff and returns their IDs
	DeleteIdleBefore(ctx context.Context, cutoff time.Time) ([]string, error)
}
