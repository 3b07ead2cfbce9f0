package entity

import (
	"context"
	"time"
)

// FlashKind is the severity of a one-shot page message
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
	FlashInfo    FlashKind = "info"
)

// Flash is a message shown once on the next rendered page
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// Session is the server-side state of one browser.
// Token and UserID play the role of the browser's stored credentials.
type Session struct {
	ID         string
	Token      string
	UserID     string
	Flashes    []Flash
	Investment *InvestmentFlow
	CreatedAt  time.Time
	LastSeenAt time.Time
}

// NewSession creates an anonymous session
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:         id,
		CreatedAt:  now,
		LastSeenAt: now,
	}
}

// HasToken reports whether the session is signed in. The token itself is never verified here.
func (s *Session) HasToken() bool {
	return s != nil && s.Token != ""
}

// Authenticate stores the credentials returned by login or signup
func (s *Session) Authenticate(token, userID string) {
	s.Token = token
	s.UserID = userID
}

// Blank reports whether the session holds no state worth storing
func (s *Session) Blank() bool {
	return s.Token == "" && s.UserID == "" && len(s.Flashes) == 0 && s.Investment == nil
}

// SignOut removes both credentials and any in-progress investment
func (s *Session) SignOut() {
	s.Token = ""
	s.UserID = ""
	s.Investment = nil
}

// AddFlash queues a message for the next page
func (s *Session) AddFlash(kind FlashKind, message string) {
	s.Flashes = append(s.Flashes, Flash{Kind: kind, Message: message})
}

// PopFlashes returns and clears queued messages
func (s *Session) PopFlashes() []Flash {
	flashes := s.Flashes
	s.Flashes = nil
	return flashes
}

// Touch records activity
func (s *Session) Touch(now time.Time) {
	s.LastSeenAt = now
}

// IdleSince reports whether the session has been inactive since cutoff
func (s *Session) IdleSince(cutoff time.Time) bool {
	return s.LastSeenAt.Before(cutoff)
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored on ctx, or nil
func SessionFromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

// TokenFromContext returns the bearer token of the session on ctx, or ""
func TokenFromContext(ctx context.Context) string {
	if s := SessionFromContext(ctx); s != nil {
		return s.Token
	}
	return ""
}
