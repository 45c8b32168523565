package repository

import (
	"time"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SentimentLogRepository handles read access to the append-only sentiment
// log. Rows are only ever written through MemberRepository transactions.
type SentimentLogRepository struct {
	db *gorm.DB
}

// NewSentimentLogRepository creates a new sentiment log repository
func NewSentimentLogRepository(db *gorm.DB) *SentimentLogRepository {
	return &SentimentLogRepository{db: db}
}

// List retrieves log rows ordered by creation time, optionally scoped to a team
func (r *SentimentLogRepository) List(teamID *uuid.UUID) ([]models.SentimentLog, error) {
	var logs []models.SentimentLog
	query := r.db.Order("created_at ASC")
	if teamID != nil {
		query = query.Where("team_id = ?", *teamID)
	}
	err := query.Find(&logs).Error
	return logs, err
}

// ListInRange retrieves log rows within [from, to) ordered by creation time.
// Uses the (team_id, created_at) index when a team is given.
func (r *SentimentLogRepository) ListInRange(teamID *uuid.UUID, from, to time.Time) ([]models.SentimentLog, error) {
	var logs []models.SentimentLog
	query := r.db.Where("created_at >= ? AND created_at < ?", from, to).Order("created_at ASC")
	if teamID != nil {
		query = query.Where("team_id = ?", *teamID)
	}
	err := query.Find(&logs).Error
	return logs, err
}

// CountByMember returns the number of log rows for a member
func (r *SentimentLogRepository) CountByMember(memberID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.SentimentLog{}).Where("member_id = ?", memberID).Count(&count).Error
	return count, err
}
