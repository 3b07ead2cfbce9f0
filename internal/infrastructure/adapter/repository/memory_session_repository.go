package repository

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
	errs "github.com/amirhossein-jamali/invest-dashboard/internal/domain/error"
	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/invest-dashboard/internal/infrastructure/adapter/model"
)

var _ persistence.SessionRepository = (*MemorySessionRepository)(nil)

// MemorySessionRepository keeps sessions in process memory.
// Values are stored encoded so callers never share a session between requests.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]memoryRecord
}

type memoryRecord struct {
	data       []byte
	lastSeenAt time.Time
}

// NewMemorySessionRepository creates an empty store
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{sessions: make(map[string]memoryRecord)}
}

// Get loads a session by ID
func (r *MemorySessionRepository) Get(_ context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	rec, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errs.ErrSessionNotFound
	}

	var row model.Session
	if err := json.Unmarshal(rec.data, &row); err != nil {
		return nil, errs.ErrSessionNotFound
	}
	session, err := row.ToEntity()
	if err != nil {
		return nil, errs.ErrSessionNotFound
	}
	return session, nil
}

// Save creates or replaces a session
func (r *MemorySessionRepository) Save(_ context.Context, session *entity.Session) error {
	row, err := model.SessionFromEntity(session)
	if err != nil {
		return err
	}
	data, err := json.Marshal(row)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.sessions[session.ID] = memoryRecord{data: data, lastSeenAt: session.LastSeenAt}
	r.mu.Unlock()
	return nil
}

// Delete removes a session
func (r *MemorySessionRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}

// DeleteIdleBefore removes sessions last seen before cutoff and returns their IDs
func (r *MemorySessionRepository) DeleteIdleBefore(_ context.Context, cutoff time.Time) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ids []string
	for id, rec := range r.sessions {
		if rec.lastSeenAt.Before(cutoff) {
			delete(r.sessions, id)
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Len returns the number of stored sessions
func (r *MemorySessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Ping always succeeds
func (r *MemorySessionRepository) Ping(context.Context) error {
	return nil
}
