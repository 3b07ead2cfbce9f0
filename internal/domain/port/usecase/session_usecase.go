package usecase

import (
	"context"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// SessionUseCase loads and stores browser sessions
type SessionUseCase interface {
	// Load returns the stored session for id, or a new anonymous session when id is
	// empty, unknown or idle for longer than the configured timeout
	Load(ctx context.Context, id string) (*entity.Session, error)

	// Save persists the session and records activity
	Save(ctx context.Context, session *entity.Session) error

	// Rotate moves the session to a new ID and deletes the record and cache kept under the old one.
	// It is called whenever credentials change.
	Rotate(ctx context.Context, session *entity.Session) error

	// Destroy deletes the session and drops its query cache
	Destroy(ctx context.Context, session *entity.Session) error

	// PurgeIdle deletes idle sessions together with their caches and returns how many were removed
	PurgeIdle(ctx context.Context) (int, error)
}
