package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SentimentLog is an append-only record of a sentiment value for a member.
// Rows are never updated or deleted individually; they are the event source
// for trend derivation. TeamID is denormalized at logging time so range
// scans by (team_id, created_at) avoid a join.
type SentimentLog struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Sentiment Sentiment `json:"sentiment" gorm:"type:varchar(20);not null"`
	MemberID  uuid.UUID `json:"member_id" gorm:"type:uuid;not null;index"`
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index:idx_sentiment_logs_team_created,priority:1"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_sentiment_logs_team_created,priority:2"`
}

// BeforeCreate sets the UUID if not already set
func (l *SentimentLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for SentimentLog
func (SentimentLog) TableName() string {
	return "sentiment_logs"
}
