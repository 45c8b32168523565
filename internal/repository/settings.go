package repository

import (
	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsRepository handles database operations for per-user settings
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetByUserID retrieves settings for a user
func (r *SettingsRepository) GetByUserID(userID uuid.UUID) (*models.Settings, error) {
	var settings models.Settings
	err := r.db.First(&settings, "user_id = ?", userID).Error
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert inserts or updates the settings row for a user
func (r *SettingsRepository) Upsert(settings *models.Settings) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"checkins_enabled", "frequency", "updated_at"}),
	}).Create(settings).Error
}
