package models

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a server-side login session identified by an opaque
// token. The token is the value stored in the client cookie; it carries no
// claims and is only meaningful against this table.
type Session struct {
	BaseModel
	Token     string    `json:"-" gorm:"uniqueIndex;not null;size:100"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	IssuedAt  time.Time `json:"issued_at" gorm:"not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its expiry
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
