package session

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
	"github.com/google/uuid"
)

var _ usecase.SessionUseCase = (*Service)(nil)

// Service implements SessionUseCase
type Service struct {
	repo         persistence.SessionRepository
	caches       query.Provider
	timeProvider core.TimeProvider
	idleTimeout  time.Duration
	newID        func() string
	logger       core.Logger
}

// NewService creates a session service. Sessions idle for longer than idleTimeout are discarded.
func NewService(
	repo persistence.SessionRepository,
	caches query.Provider,
	timeProvider core.TimeProvider,
	idleTimeout time.Duration,
	logger core.Logger,
) *Service {
	return &Service{
		repo:         repo,
		caches:       caches,
		timeProvider: timeProvider,
		idleTimeout:  idleTimeout,
		newID:        uuid.NewString,
		logger:       logger,
	}
}

func (s *Service) fresh() *entity.Session {
	return entity.NewSession(s.newID(), s.timeProvider.Now())
}

func (s *Service) cutoff() time.Time {
	return s.timeProvider.Now().Add(-s.idleTimeout)
}

// Load returns the stored session or a new anonymous one
func (s *Service) Load(ctx context.Context, id string) (*entity.Session, error) {
	if id == "" {
		return s.fresh(), nil
	}

	session, err := s.repo.Get(ctx, id)
	if errors.Is(err, errs.ErrSessionNotFound) {
		return s.fresh(), nil
	}
	if err != nil {
		return nil, err
	}

	if s.idleTimeout > 0 && session.IdleSince(s.cutoff()) {
		s.logger.Info("Session expired after inactivity", map[string]any{
			"session_id": id,
			"last_seen":  session.LastSeenAt,
		})
		if err := s.Destroy(ctx, session); err != nil {
			return nil, err
		}
		return s.fresh(), nil
	}

	return session, nil
}

// Save persists the session and records activity
func (s *Service) Save(ctx context.Context, session *entity.Session) error {
	session.Touch(s.timeProvider.Now())
	return s.repo.Save(ctx, session)
}

// Rotate moves session to a new ID. The old record and cache are removed.
func (s *Service) Rotate(ctx context.Context, session *entity.Session) error {
	oldID := session.ID
	if err := s.repo.Delete(ctx, oldID); err != nil {
		return err
	}
	s.caches.Drop(oldID)

	session.ID = s.newID()
	session.CreatedAt = s.timeProvider.Now()
	return nil
}

// Destroy deletes the session and drops its query cache
func (s *Service) Destroy(ctx context.Context, session *entity.Session) error {
	s.caches.Drop(session.ID)
	return s.repo.Delete(ctx, session.ID)
}

// PurgeIdle deletes idle sessions together with their caches
func (s *Service) PurgeIdle(ctx context.Context) (int, error) {
	if s.idleTimeout <= 0 {
		return 0, nil
	}

	ids, err := s.repo.DeleteIdleBefore(ctx, s.cutoff())
	if err != nil {
		s.logger.Error("Failed to purge idle sessions", map[string]any{"error": err})
		return 0, err
	}

	for _, id := range ids {
		s.caches.Drop(id)
	}
	if len(ids) > 0 {
		s.logger.Info("Purged idle sessions", map[string]any{"count": len(ids)})
	}
	return len(ids), nil
}
