package repository

import (
	"time"

	"teampulse-backend/internal/database/models"

	"gorm.io/gorm"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// GetByToken retrieves a session by its opaque token
func (r *SessionRepository) GetByToken(token string) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// DeleteByToken deletes a session by token
func (r *SessionRepository) DeleteByToken(token string) error {
	result := r.db.Delete(&models.Session{}, "token = ?", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteExpired removes sessions past their expiry and returns how many
func (r *SessionRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.Delete(&models.Session{}, "expires_at < ?", now)
	return result.RowsAffected, result.Error
}
