package service

import (
	"errors"

	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateSettingsRequest represents the request to update check-in settings
type UpdateSettingsRequest struct {
	CheckinsEnabled *bool  `json:"checkins_enabled" validate:"required"`
	Frequency       string `json:"frequency" validate:"required"`
}

// SettingsResponse represents check-in settings in API responses
type SettingsResponse struct {
	CheckinsEnabled bool   `json:"checkins_enabled"`
	Frequency       string `json:"frequency"`
}

// SettingsService handles per-user check-in settings
type SettingsService struct {
	repo      repository.SettingsRepositoryInterface
	validator *validator.Validate
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepositoryInterface, validator *validator.Validate) *SettingsService {
	return &SettingsService{
		repo:      repo,
		validator: validator,
	}
}

// GetSettings returns the user's settings, falling back to defaults when
// the user has never saved any
func (s *SettingsService) GetSettings(userID uuid.UUID) (*SettingsResponse, error) {
	settings, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &SettingsResponse{
				CheckinsEnabled: true,
				Frequency:       string(models.CheckinFrequencyWeekly),
			}, nil
		}
		return nil, apperrors.NewStorageError("get settings", err)
	}

	return &SettingsResponse{
		CheckinsEnabled: settings.CheckinsEnabled,
		Frequency:       string(settings.Frequency),
	}, nil
}

// UpdateSettings validates and persists the user's check-in settings
func (s *SettingsService) UpdateSettings(userID uuid.UUID, req *UpdateSettingsRequest) (*SettingsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	frequency := models.CheckinFrequency(req.Frequency)
	if !frequency.IsValid() {
		return nil, apperrors.NewValidationError("frequency", "must be one of: daily, weekly, monthly")
	}

	settings := &models.Settings{
		UserID:          userID,
		CheckinsEnabled: *req.CheckinsEnabled,
		Frequency:       frequency,
	}
	if err := s.repo.Upsert(settings); err != nil {
		return nil, apperrors.NewStorageError("save settings", err)
	}

	return &SettingsResponse{
		CheckinsEnabled: settings.CheckinsEnabled,
		Frequency:       string(settings.Frequency),
	}, nil
}
