package core

import "time"

// TimeProvider abstracts the clock so session expiry and investment dates are testable
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
