package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/invest-dashboard/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionCleanup(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		_, err := NewSessionCleanup("every tuesday", new(usecase.MockSessionUseCase), time.Second, logger.NewNoopLogger())

		assert.Error(t, err)
	})

	t.Run("should purge idle sessions with a deadline", func(t *testing.T) {
		// Arrange
		sessions := new(usecase.MockSessionUseCase)
		sessions.On("PurgeIdle", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(3, nil).Once()
		cleanup, err := NewSessionCleanup("@every 10m", sessions, time.Second, logger.NewNoopLogger())
		require.NoError(t, err)

		// Act
		cleanup.Run()

		// Assert
		sessions.AssertExpectations(t)
	})

	t.Run("should survive a failing purge", func(t *testing.T) {
		// Arrange
		sessions := new(usecase.MockSessionUseCase)
		sessions.On("PurgeIdle", mock.Anything).Return(0, errors.New("store down")).Once()
		cleanup, err := NewSessionCleanup("@every 10m", sessions, 0, logger.NewNoopLogger())
		require.NoError(t, err)

		// Act and Assert
		assert.NotPanics(t, cleanup.Run)
		sessions.AssertExpectations(t)
	})

	t.Run("should start and stop", func(t *testing.T) {
		cleanup, err := NewSessionCleanup("@every 1h", new(usecase.MockSessionUseCase), time.Second, logger.NewNoopLogger())
		require.NoError(t, err)

		cleanup.Start()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		cleanup.Stop(ctx)

		assert.NoError(t, ctx.Err())
	})
}
