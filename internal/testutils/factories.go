package testutils

import (
	"fmt"
	"time"

	"teampulse-backend/internal/database/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password is
// "password123" hashed with a low bcrypt cost to keep tests fast.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:        fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		PasswordHash: string(hash),
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithPassword sets a custom password for the user
func (f *UserFactory) WithPassword(password string) *models.User {
	user := f.Create()
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user.PasswordHash = string(hash)
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Team " + id.String()[:8],
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// MemberFactory provides methods to create test Member data
type MemberFactory struct{}

// NewMemberFactory creates a new MemberFactory
func NewMemberFactory() *MemberFactory {
	return &MemberFactory{}
}

// Create creates a test Member with default values
func (f *MemberFactory) Create() *models.Member {
	id := uuid.New()
	return &models.Member{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:    uuid.New(),
		Name:      "Jane Doe",
		Email:     fmt.Sprintf("jane-%s@test.com", id.String()[:8]),
		Sentiment: models.SentimentNeutral,
	}
}

// WithTeam assigns the member to an existing team
func (f *MemberFactory) WithTeam(teamID uuid.UUID) *models.Member {
	member := f.Create()
	member.TeamID = teamID
	return member
}

// WithSentiment sets a custom sentiment for the member
func (f *MemberFactory) WithSentiment(sentiment models.Sentiment) *models.Member {
	member := f.Create()
	member.Sentiment = sentiment
	return member
}

// WithName sets a custom name for the member
func (f *MemberFactory) WithName(name string) *models.Member {
	member := f.Create()
	member.Name = name
	return member
}

// SentimentLogFactory provides methods to create test SentimentLog data
type SentimentLogFactory struct{}

// NewSentimentLogFactory creates a new SentimentLogFactory
func NewSentimentLogFactory() *SentimentLogFactory {
	return &SentimentLogFactory{}
}

// Create creates a test SentimentLog for the given member and team
func (f *SentimentLogFactory) Create(memberID, teamID uuid.UUID, sentiment models.Sentiment) *models.SentimentLog {
	return &models.SentimentLog{
		ID:        uuid.New(),
		Sentiment: sentiment,
		MemberID:  memberID,
		TeamID:    teamID,
		CreatedAt: time.Now(),
	}
}

// CreateAt creates a test SentimentLog backdated to a specific time
func (f *SentimentLogFactory) CreateAt(memberID, teamID uuid.UUID, sentiment models.Sentiment, at time.Time) *models.SentimentLog {
	entry := f.Create(memberID, teamID, sentiment)
	entry.CreatedAt = at
	return entry
}

// SessionFactory provides methods to create test Session data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a test Session for the given user, valid for one hour
func (f *SessionFactory) Create(userID uuid.UUID) *models.Session {
	id := uuid.New()
	now := time.Now()
	return &models.Session{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Token:     "test-token-" + id.String(),
		UserID:    userID,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	}
}

// Expired creates a test Session that is already past its expiry
func (f *SessionFactory) Expired(userID uuid.UUID) *models.Session {
	session := f.Create(userID)
	session.IssuedAt = time.Now().Add(-2 * time.Hour)
	session.ExpiresAt = time.Now().Add(-time.Hour)
	return session
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Team         *TeamFactory
	Member       *MemberFactory
	SentimentLog *SentimentLogFactory
	Session      *SessionFactory
	Settings     *SettingsFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Team:         NewTeamFactory(),
		Member:       NewMemberFactory(),
		SentimentLog: NewSentimentLogFactory(),
		Session:      NewSessionFactory(),
		Settings:     NewSettingsFactory(),
	}
}

// SettingsFactory provides methods to create test Settings data
type SettingsFactory struct{}

// NewSettingsFactory creates a new SettingsFactory
func NewSettingsFactory() *SettingsFactory {
	return &SettingsFactory{}
}

// Create creates test Settings for the given user
func (f *SettingsFactory) Create(userID uuid.UUID) *models.Settings {
	return &models.Settings{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:          userID,
		CheckinsEnabled: true,
		Frequency:       models.CheckinFrequencyWeekly,
	}
}
