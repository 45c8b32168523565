package repository

import (
	"time"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetAll() ([]models.Team, error)
	GetWithMembers(id uuid.UUID) (*models.Team, error)
	GetMemberCount(teamID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
}

// MemberRepositoryInterface defines the interface for member repository operations
type MemberRepositoryInterface interface {
	CreateWithLog(member *models.Member) error
	GetByID(id uuid.UUID) (*models.Member, error)
	GetByTeamID(teamID uuid.UUID) ([]models.Member, error)
	UpdateSentimentWithLog(id uuid.UUID, sentiment models.Sentiment) (*models.Member, error)
	DeleteWithLogs(id uuid.UUID) error
}

// SentimentLogRepositoryInterface defines the interface for sentiment log repository operations
type SentimentLogRepositoryInterface interface {
	List(teamID *uuid.UUID) ([]models.SentimentLog, error)
	ListInRange(teamID *uuid.UUID, from, to time.Time) ([]models.SentimentLog, error)
	CountByMember(memberID uuid.UUID) (int64, error)
}

// SessionRepositoryInterface defines the interface for session repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByToken(token string) (*models.Session, error)
	DeleteByToken(token string) error
	DeleteExpired(now time.Time) (int64, error)
}

// SettingsRepositoryInterface defines the interface for settings repository operations
type SettingsRepositoryInterface interface {
	GetByUserID(userID uuid.UUID) (*models.Settings, error)
	Upsert(settings *models.Settings) error
}
