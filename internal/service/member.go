package service

import (
	"errors"
	"strings"

	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const timeFormat = "2006-01-02T15:04:05Z07:00"

// MemberService handles business logic for members and sentiment updates
type MemberService struct {
	repo      repository.MemberRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(repo repository.MemberRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *MemberService {
	return &MemberService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// AddMemberRequest represents the data needed to add a member.
// Sentiment accepts any casing; it is normalized to lowercase.
type AddMemberRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Sentiment string `json:"sentiment" validate:"required"`
	TeamID    string `json:"team_id" validate:"required,uuid4"`
}

// UpdateSentimentRequest represents a sentiment change for a member
type UpdateSentimentRequest struct {
	MemberID  string `json:"member_id" validate:"required,uuid4"`
	Sentiment string `json:"sentiment" validate:"required"`
}

// MemberResponse represents the response data for a member
type MemberResponse struct {
	ID        uuid.UUID `json:"id"`
	TeamID    uuid.UUID `json:"team_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Sentiment string    `json:"sentiment"`
	CreatedAt string    `json:"created_at"`
}

// MemberSearchResponse is a page of members plus the total filtered count
type MemberSearchResponse struct {
	Items      []MemberResponse `json:"items"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}

// AddMember validates and persists a new member. The member's starting
// sentiment is logged in the same transaction.
func (s *MemberService) AddMember(req *AddMemberRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	sentiment := models.NormalizeSentiment(req.Sentiment)
	if !sentiment.IsValid() {
		return nil, apperrors.NewValidationError("sentiment", "must be one of happy, neutral, sad")
	}

	teamID, err := uuid.Parse(req.TeamID)
	if err != nil {
		return nil, apperrors.NewValidationError("team_id", "must be a valid UUID")
	}

	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.NewStorageError("get team", err)
	}

	member := &models.Member{
		TeamID:    teamID,
		Name:      req.Name,
		Email:     req.Email,
		Sentiment: sentiment,
	}
	if err := s.repo.CreateWithLog(member); err != nil {
		return nil, apperrors.NewStorageError("create member", err)
	}

	return memberToResponse(member), nil
}

// UpdateSentiment sets the member's current sentiment and appends a log
// row; the repository guarantees both writes are atomic.
func (s *MemberService) UpdateSentiment(req *UpdateSentimentRequest) (*MemberResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	sentiment := models.NormalizeSentiment(req.Sentiment)
	if !sentiment.IsValid() {
		return nil, apperrors.NewValidationError("sentiment", "must be one of happy, neutral, sad")
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		return nil, apperrors.NewValidationError("member_id", "must be a valid UUID")
	}

	member, err := s.repo.UpdateSentimentWithLog(memberID, sentiment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, apperrors.NewStorageError("update sentiment", err)
	}

	return memberToResponse(member), nil
}

// DeleteMember removes a member and every sentiment log row referencing it.
// Deleting the same id twice yields NotFound on the second call.
func (s *MemberService) DeleteMember(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.NewValidationError("id", "member id is required")
	}

	memberID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.NewValidationError("id", "must be a valid UUID")
	}

	if err := s.repo.DeleteWithLogs(memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return apperrors.NewStorageError("delete member", err)
	}

	return nil
}

// SearchMembers filters the team's members by case-insensitive substring
// match on name or email and slices out the requested page. The filter is a
// pure function over the current member set; an empty query matches all.
func (s *MemberService) SearchMembers(teamID uuid.UUID, query string, page, pageSize int) (*MemberSearchResponse, error) {
	if page < 1 {
		return nil, apperrors.NewValidationError("page", "must be at least 1")
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, apperrors.NewValidationError("page_size", "must be between 1 and 100")
	}

	if _, err := s.teamRepo.GetByID(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, apperrors.NewStorageError("get team", err)
	}

	members, err := s.repo.GetByTeamID(teamID)
	if err != nil {
		return nil, apperrors.NewStorageError("list members", err)
	}

	filtered := filterMembers(members, query)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]MemberResponse, 0, end-start)
	for _, member := range filtered[start:end] {
		items = append(items, *memberToResponse(&member))
	}

	return &MemberSearchResponse{
		Items:      items,
		TotalCount: len(filtered),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// filterMembers keeps members whose name or email contains the query,
// case-insensitively, preserving input order
func filterMembers(members []models.Member, query string) []models.Member {
	if query == "" {
		return members
	}
	needle := strings.ToLower(query)
	filtered := make([]models.Member, 0, len(members))
	for _, member := range members {
		if strings.Contains(strings.ToLower(member.Name), needle) ||
			strings.Contains(strings.ToLower(member.Email), needle) {
			filtered = append(filtered, member)
		}
	}
	return filtered
}

// memberToResponse converts a member model to its response shape
func memberToResponse(member *models.Member) *MemberResponse {
	return &MemberResponse{
		ID:        member.ID,
		TeamID:    member.TeamID,
		Name:      member.Name,
		Email:     member.Email,
		Sentiment: string(member.Sentiment),
		CreatedAt: member.CreatedAt.Format(timeFormat),
	}
}

// validationError converts a validator.ValidationErrors into the typed
// field-level error surfaced to callers
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := strings.ToLower(verrs[0].Field())
		return apperrors.NewValidationError(field, "failed on "+verrs[0].Tag()+" constraint")
	}
	return apperrors.NewValidationError("", err.Error())
}
