package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/entity"
)

// Session is the stored form of a browser session, shared by the postgres and redis stores
type Session struct {
	ID         string    `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Token      string    `gorm:"type:text;not null;default:''" json:"token"`
	UserID     string    `gorm:"type:varchar(64);not null;default:''" json:"userId"`
	Payload    []byte    `gorm:"type:jsonb;not null" json:"payload"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
	LastSeenAt time.Time `gorm:"not null" json:"lastSeenAt"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "dashboard_sessions"
}

// sessionPayload holds the parts of a session that have no column of their own
type sessionPayload struct {
	Flashes    []entity.Flash         `json:"flashes,omitempty"`
	Investment *entity.InvestmentFlow `json:"investment,omitempty"`
}

// SessionFromEntity converts a session entity into its stored form
func SessionFromEntity(s *entity.Session) (*Session, error) {
	payload, err := json.Marshal(sessionPayload{Flashes: s.Flashes, Investment: s.Investment})
	if err != nil {
		return nil, fmt.Errorf("encode session payload: %w", err)
	}
	return &Session{
		ID:         s.ID,
		Token:      s.Token,
		UserID:     s.UserID,
		Payload:    payload,
		CreatedAt:  s.CreatedAt,
		LastSeenAt: s.LastSeenAt,
	}, nil
}

// ToEntity converts the stored form back into a session entity
func (m *Session) ToEntity() (*entity.Session, error) {
	var payload sessionPayload
	if len(m.Payload) > 0 {
		if err := json.Unmarshal(m.Payload, &payload); err != nil {
			return nil, fmt.Errorf("decode session payload: %w", err)
		}
	}
	return &entity.Session{
		ID:         m.ID,
		Token:      m.Token,
		UserID:     m.UserID,
		Flashes:    payload.Flashes,
		Investment: payload.Investment,
		CreatedAt:  m.CreatedAt,
		LastSeenAt: m.LastSeenAt,
	}, nil
}
