package repository

import (
	"time"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRepository handles database operations for members. Multi-row
// writes (create-plus-log, sentiment-update-plus-log, cascade delete) run
// inside a single transaction so readers never observe partial state.
type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// CreateWithLog creates a member and appends the initial sentiment log row
// in one transaction, so trends include the member's starting sentiment.
func (r *MemberRepository) CreateWithLog(member *models.Member) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(member).Error; err != nil {
			return err
		}
		log := &models.SentimentLog{
			Sentiment: member.Sentiment,
			MemberID:  member.ID,
			TeamID:    member.TeamID,
		}
		return tx.Create(log).Error
	})
}

// GetByID retrieves a member by ID
func (r *MemberRepository) GetByID(id uuid.UUID) (*models.Member, error) {
	var member models.Member
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByTeamID retrieves all members of a team in insertion order
func (r *MemberRepository) GetByTeamID(teamID uuid.UUID) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Where("team_id = ?", teamID).Order("created_at ASC").Find(&members).Error
	return members, err
}

// UpdateSentimentWithLog updates the member's current sentiment and appends
// a sentiment log row stamped with the member's team and the current time.
// Both writes commit together; last writer wins on the member field while
// every write keeps its own log row.
func (r *MemberRepository) UpdateSentimentWithLog(id uuid.UUID, sentiment models.Sentiment) (*models.Member, error) {
	var member models.Member
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&member, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Model(&member).Update("sentiment", sentiment).Error; err != nil {
			return err
		}
		log := &models.SentimentLog{
			Sentiment: sentiment,
			MemberID:  member.ID,
			TeamID:    member.TeamID,
			CreatedAt: time.Now(),
		}
		return tx.Create(log).Error
	})
	if err != nil {
		return nil, err
	}
	member.Sentiment = sentiment
	return &member, nil
}

// DeleteWithLogs deletes all sentiment log rows for the member, then the
// member itself, as one transaction. Statement order matters: logs first,
// so a rollback can never leave dangling logs.
func (r *MemberRepository) DeleteWithLogs(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.SentimentLog{}, "member_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Member{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
