package models

import (
	"github.com/google/uuid"
)

// Settings holds per-user check-in preferences
type Settings struct {
	BaseModel
	UserID          uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	CheckinsEnabled bool             `json:"checkins_enabled" gorm:"not null;default:true"`
	Frequency       CheckinFrequency `json:"frequency" gorm:"type:varchar(20);not null;default:'weekly'"`
}

// TableName returns the table name for Settings
func (Settings) TableName() string {
	return "settings"
}
