package logger

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level core.LogLevel) (core.Logger, *observer.ObservedLogs) {
	obsCore, logs := observer.New(zap.DebugLevel)
	return NewFromZap(zap.New(obsCore), level), logs
}

func TestZapLogger(t *testing.T) {
	t.Run("should drop entries below the configured level", func(t *testing.T) {
		// Arrange
		log, logs := newObserved(core.LogLevelWarn)

		// Act
		log.Debug("debug", nil)
		log.Info("info", nil)
		log.Warn("warn", nil)
		log.Error("error", nil)

		// Assert
		assert.Equal(t, 2, logs.Len())
		assert.Equal(t, "warn", logs.All()[0].Message)
	})

	t.Run("should change level at runtime", func(t *testing.T) {
		log, logs := newObserved(core.LogLevelError)

		log.SetLevel(core.LogLevelDebug)
		log.Debug("now visible", nil)

		assert.Equal(t, core.LogLevelDebug, log.GetLevel())
		assert.Equal(t, 1, logs.Len())
	})

	t.Run("should carry fields from With", func(t *testing.T) {
		log, logs := newObserved(core.LogLevelInfo)

		log.With(map[string]any{"request_id": "r-1"}).Info("hello", map[string]any{"err": errors.New("boom")})

		ctx := logs.All()[0].ContextMap()
		assert.Equal(t, "r-1", ctx["request_id"])
		assert.Equal(t, "boom", ctx["err"])
	})
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("DEBUG"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warning"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel("error"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("nonsense"))
}
