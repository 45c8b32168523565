package service

import (
	"errors"

	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams
type TeamService struct {
	repo       repository.TeamRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
	cfg        *config.Config
	validator  *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, memberRepo repository.MemberRepositoryInterface, cfg *config.Config, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:       repo,
		memberRepo: memberRepo,
		cfg:        cfg,
		validator:  validator,
	}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// TeamResponse represents the response data for a team listing entry.
// MemberCount and AverageSentiment are derived, never stored.
type TeamResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	MemberCount      int64     `json:"member_count"`
	AverageSentiment string    `json:"average_sentiment,omitempty"`
	CreatedAt        string    `json:"created_at"`
}

// TeamDetailResponse represents a team together with its members
type TeamDetailResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	CreatedAt string           `json:"created_at"`
	Members   []MemberResponse `json:"members"`
}

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", "team name must be between 1 and 50 characters")
	}

	team := &models.Team{Name: req.Name}
	if err := s.repo.Create(team); err != nil {
		return nil, apperrors.NewStorageError("create team", err)
	}

	return &TeamResponse{
		ID:        team.ID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt.Format(timeFormat),
	}, nil
}

// ListTeams retrieves all teams with derived member counts and average sentiment
func (s *TeamService) ListTeams() ([]TeamResponse, error) {
	teams, err := s.repo.GetAll()
	if err != nil {
		return nil, apperrors.NewStorageError("list teams", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		members, err := s.memberRepo.GetByTeamID(team.ID)
		if err != nil {
			return nil, apperrors.NewStorageError("list team members", err)
		}
		responses[i] = TeamResponse{
			ID:               team.ID,
			Name:             team.Name,
			MemberCount:      int64(len(members)),
			AverageSentiment: s.averageSentiment(members),
			CreatedAt:        team.CreatedAt.Format(timeFormat),
		}
	}

	return responses, nil
}

// GetTeamByID retrieves a team with its members
func (s *TeamService) GetTeamByID(id uuid.UUID) (*TeamDetailResponse, error) {
	team, err := s.repo.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.NewStorageError("get team", err)
	}

	members := make([]MemberResponse, len(team.Members))
	for i, member := range team.Members {
		members[i] = *memberToResponse(&member)
	}

	return &TeamDetailResponse{
		ID:        team.ID,
		Name:      team.Name,
		CreatedAt: team.CreatedAt.Format(timeFormat),
		Members:   members,
	}, nil
}

// DeleteTeam deletes a team. Teams that still have members are not deleted;
// the caller must delete or reassign members first. This keeps members from
// ever pointing at a nonexistent team.
func (s *TeamService) DeleteTeam(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return apperrors.NewStorageError("get team", err)
	}

	count, err := s.repo.GetMemberCount(id)
	if err != nil {
		return apperrors.NewStorageError("count team members", err)
	}
	if count > 0 {
		return apperrors.ErrTeamHasMembers
	}

	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return apperrors.NewStorageError("delete team", err)
	}

	return nil
}

// averageSentiment derives the team's summary category from the current
// member sentiments: the mean score is mapped back to the nearest category.
// Empty teams have no summary.
func (s *TeamService) averageSentiment(members []models.Member) string {
	if len(members) == 0 {
		return ""
	}

	total := 0
	for _, member := range members {
		total += s.cfg.ScoreFor(member.Sentiment)
	}
	mean := float64(total) / float64(len(members))

	nearest := models.SentimentNeutral
	best := -1.0
	for _, candidate := range []models.Sentiment{models.SentimentSad, models.SentimentNeutral, models.SentimentHappy} {
		distance := mean - float64(s.cfg.ScoreFor(candidate))
		if distance < 0 {
			distance = -distance
		}
		if best < 0 || distance < best {
			best = distance
			nearest = candidate
		}
	}
	return string(nearest)
}
