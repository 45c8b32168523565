package models

// Team represents a tracked team owning zero or more members
type Team struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:50" validate:"required,min=1,max=50"`

	// Relationships
	Members []Member `json:"members,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
