package repository

import (
	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams ordered by creation time
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("created_at ASC").Find(&teams).Error
	return teams, err
}

// GetWithMembers retrieves a team with all its members in insertion order
func (r *TeamRepository) GetWithMembers(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("members.created_at ASC")
	}).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetMemberCount returns the number of members in a team
func (r *TeamRepository) GetMemberCount(teamID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Member{}).Where("team_id = ?", teamID).Count(&count).Error
	return count, err
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
