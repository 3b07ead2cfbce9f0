package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/query"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/invest-dashboard/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// droppedProvider records which session caches were dropped
type droppedProvider struct {
	dropped []string
}

func (p *droppedProvider) For(string) query.Cache { return nil }
func (p *droppedProvider) Drop(id string)         { p.dropped = append(p.dropped, id) }

func newTestService(repo *persistence.MockSessionRepository, clock *timeprovider.FixedTimeProvider) (*Service, *droppedProvider) {
	caches := &droppedProvider{}
	svc := NewService(repo, caches, clock, time.Hour, logger.NewNoopLogger())
	svc.newID = func() string { return "new-id" }
	return svc, caches
}

func TestService_Load(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should create an anonymous session when no id is given", func(t *testing.T) {
		// Arrange
		repo := new(persistence.MockSessionRepository)
		svc, _ := newTestService(repo, timeprovider.NewFixedTimeProvider(now))

		// Act
		s, err := svc.Load(context.Background(), "")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "new-id", s.ID)
		assert.False(t, s.HasToken())
		repo.AssertNotCalled(t, "Get")
	})

	t.Run("should return the stored session", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := new(persistence.MockSessionRepository)
		svc, _ := newTestService(repo, timeprovider.NewFixedTimeProvider(now))
		stored := entity.NewSession("abc", now.Add(-10*time.Minute))
		stored.Authenticate("tok", "u1")
		repo.On("Get", ctx, "abc").Return(stored, nil)

		// Act
		s, err := svc.Load(ctx, "abc")

		// Assert
		require.NoError(t, err)
		assert.Same(t, stored, s)
		repo.AssertExpectations(t)
	})

	t.Run("should replace an unknown session id", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := new(persistence.MockSessionRepository)
		svc, _ := newTestService(repo, timeprovider.NewFixedTimeProvider(now))
		repo.On("Get", ctx, "gone").Return(nil, errs.ErrSessionNotFound)

		// Act
		s, err := svc.Load(ctx, "gone")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "new-id", s.ID)
	})

	t.Run("should discard an idle session and its cache", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := new(persistence.MockSessionRepository)
		svc, caches := newTestService(repo, timeprovider.NewFixedTimeProvider(now))
		stored := entity.NewSession("old", now.Add(-2*time.Hour))
		stored.Authenticate("tok", "u1")
		repo.On("Get", ctx, "old").Return(stored, nil)
		repo.On("Delete", ctx, "old").Return(nil)

		// Act
		s, err := svc.Load(ctx, "old")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "new-id", s.ID)
		assert.False(t, s.HasToken())
		assert.Equal(t, []string{"old"}, caches.dropped)
		repo.AssertExpectations(t)
	})

	t.Run("should surface store failures", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := new(persistence.MockSessionRepository)
		svc, _ := newTestService(repo, timeprovider.NewFixedTimeProvider(now))
		repo.On("Get", ctx, "abc").Return(nil, errs.ErrSessionStore)

		// Act
		_, err := svc.Load(ctx, "abc")

		// Assert
		assert.ErrorIs(t, err, errs.ErrSessionStore)
	})
}

func TestService_Save(t *testing.T) {
	t.Run("should touch the session before saving", func(t *testing.T) {
		// Arrange
		now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		ctx := context.Background()
		repo := new(persistence.MockSessionRepository)
		svc, _ := newTestService(repo, timeprovider.NewFixedTimeProvider(now))
		s := entity.NewSession("abc", now.Add(-time.Minute))
		repo.On("Save", ctx, mock.MatchedBy(func(saved *entity.Session) bool {
			return saved.LastSeenAt.Equal(now)
		})).Return(nil)

		// Act
		err := svc.Save(ctx, s)

		// Assert
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestService_PurgeIdle(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should drop the caches of purged sessions", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := new(persistence.MockSessionRepository)
		svc, caches := newTestService(repo, timeprovider.NewFixedTimeProvider(now))
		repo.On("DeleteIdleBefore", ctx, now.Add(-time.Hour)).Return([]string{"a", "b"}, nil)

		// Act
		n, err := svc.PurgeIdle(ctx)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"a", "b"}, caches.dropped)
	})

	t.Run("should report store errors", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := new(persistence.MockSessionRepository)
		svc, caches := newTestService(repo, timeprovider.NewFixedTimeProvider(now))
		repo.On("DeleteIdleBefore", ctx, mock.Anything).Return(nil, errors.New("down"))

		// Act
		n, err := svc.PurgeIdle(ctx)

		// Assert
		assert.Error(t, err)
		assert.Zero(t, n)
		assert.Empty(t, caches.dropped)
	})
}

func TestService_Rotate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should move the session to a new id and remove the old record", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := new(persistence.MockSessionRepository)
		svc, caches := newTestService(repo, timeprovider.NewFixedTimeProvider(now))
		session := entity.NewSession("anon-id", now.Add(-time.Minute))
		session.Authenticate("tok", "u1")
		repo.On("Delete", ctx, "anon-id").Return(nil)

		// Act
		err := svc.Rotate(ctx, session)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "new-id", session.ID)
		assert.NotEqual(t, "anon-id", session.ID)
		assert.Equal(t, now, session.CreatedAt)
		assert.Equal(t, "tok", session.Token)
		assert.Equal(t, []string{"anon-id"}, caches.dropped)
		repo.AssertExpectations(t)
	})

	t.Run("should keep the old id when the store fails", func(t *testing.T) {
		// Arrange
		ctx := context.Background()
		repo := new(persistence.MockSessionRepository)
		svc, caches := newTestService(repo, timeprovider.NewFixedTimeProvider(now))
		session := entity.NewSession("anon-id", now)
		repo.On("Delete", ctx, "anon-id").Return(errs.ErrSessionStore)

		// Act
		err := svc.Rotate(ctx, session)

		// Assert
		assert.ErrorIs(t, err, errs.ErrSessionStore)
		assert.Equal(t, "anon-id", session.ID)
		assert.Empty(t, caches.dropped)
	})
}
