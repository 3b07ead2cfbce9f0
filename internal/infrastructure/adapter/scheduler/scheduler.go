package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/usecase"
	"github.com/robfig/cron/v3"
)

// cronLogger adapts core.Logger to cron.Logger
type cronLogger struct {
	logger core.Logger
}

func toFields(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, toFields(keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	fields := toFields(keysAndValues)
	fields["error"] = err
	l.logger.Error("cron: "+msg, fields)
}

// SessionCleanup periodically purges idle sessions
type SessionCleanup struct {
	cron     *cron.Cron
	sessions usecase.SessionUseCase
	timeout  time.Duration
	logger   core.Logger
}

// NewSessionCleanup schedules PurgeIdle on spec, a standard cron expression or a descriptor such as "@every 10m"
func NewSessionCleanup(spec string, sessions usecase.SessionUseCase, timeout time.Duration, logger core.Logger) (*SessionCleanup, error) {
	cl := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)

	s := &SessionCleanup{
		cron:     c,
		sessions: sessions,
		timeout:  timeout,
		logger:   logger,
	}
	if _, err := c.AddFunc(spec, s.Run); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", spec, err)
	}
	return s, nil
}

// Run purges idle sessions once
func (s *SessionCleanup) Run() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	n, err := s.sessions.PurgeIdle(ctx)
	if err != nil {
		s.logger.Error("Idle session cleanup failed", map[string]any{"error": err})
		return
	}
	if n > 0 {
		s.logger.Info("Idle sessions removed", map[string]any{"count": n})
	}
}

// Start runs the schedule in the background
func (s *SessionCleanup) Start() {
	s.cron.Start()
}

// Stop stops the schedule and waits for a running cleanup to finish or ctx to end
func (s *SessionCleanup) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
