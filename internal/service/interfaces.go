package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team operations
type TeamServiceInterface interface {
	CreateTeam(req *CreateTeamRequest) (*TeamResponse, error)
	ListTeams() ([]TeamResponse, error)
	GetTeamByID(id uuid.UUID) (*TeamDetailResponse, error)
	DeleteTeam(id uuid.UUID) error
}

// MemberServiceInterface defines the interface for member operations
type MemberServiceInterface interface {
	AddMember(req *AddMemberRequest) (*MemberResponse, error)
	UpdateSentiment(req *UpdateSentimentRequest) (*MemberResponse, error)
	DeleteMember(id string) error
	SearchMembers(teamID uuid.UUID, query string, page, pageSize int) (*MemberSearchResponse, error)
}

// TrendServiceInterface defines the interface for trend aggregation
type TrendServiceInterface interface {
	GetTrends(teamID *uuid.UUID) (*TrendsResponse, error)
}

// SettingsServiceInterface defines the interface for per-user settings
type SettingsServiceInterface interface {
	GetSettings(userID uuid.UUID) (*SettingsResponse, error)
	UpdateSettings(userID uuid.UUID, req *UpdateSettingsRequest) (*SettingsResponse, error)
}
