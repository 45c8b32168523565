package models

import (
	"github.com/google/uuid"
)

// Member represents a team member whose sentiment is tracked.
// The sentiment field holds the current value; every change is also
// appended to sentiment_logs.
type Member struct {
	BaseModel
	TeamID    uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name      string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Email     string    `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	Sentiment Sentiment `json:"sentiment" gorm:"type:varchar(20);not null;default:'neutral'" validate:"required"`

	// Relationships
	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Member
func (Member) TableName() string {
	return "members"
}
