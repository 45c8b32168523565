package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenBytes = 32

// Service authenticates users and manages their opaque session tokens.
// Tokens are random values looked up in the sessions table, so revoking a
// session takes effect immediately.
type Service struct {
	userRepo    repository.UserRepositoryInterface
	sessionRepo repository.SessionRepositoryInterface
	cfg         *config.Config
}

// NewService creates a new auth service
func NewService(userRepo repository.UserRepositoryInterface, sessionRepo repository.SessionRepositoryInterface, cfg *config.Config) *Service {
	return &Service{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		cfg:         cfg,
	}
}

// Login verifies the credentials and issues a fresh session
func (s *Service) Login(email, password string) (*models.Session, *models.User, error) {
	if email == "" || password == "" {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrInvalidCredentials
		}
		return nil, nil, apperrors.NewStorageError("get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperrors.ErrInvalidCredentials
	}

	token, err := generateToken()
	if err != nil {
		return nil, nil, fmt.Errorf("generate session token: %w", err)
	}

	now := time.Now()
	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.cfg.SessionTTL()),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, nil, apperrors.NewStorageError("create session", err)
	}

	return session, user, nil
}

// Resolve maps a session token to its user. Expired sessions are deleted
// on sight and reported as expired.
func (s *Service) Resolve(token string) (*models.User, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	session, err := s.sessionRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.NewStorageError("get session", err)
	}

	if session.Expired(time.Now()) {
		if err := s.sessionRepo.DeleteByToken(token); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewStorageError("delete session", err)
		}
		return nil, apperrors.ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, apperrors.NewStorageError("get user", err)
	}

	return user, nil
}

// Logout revokes the session for the given token. Unknown tokens are not
// an error so logout stays idempotent.
func (s *Service) Logout(token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessionRepo.DeleteByToken(token); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewStorageError("delete session", err)
	}
	return nil
}

// PurgeExpired removes all sessions past their expiry and returns how many
// were deleted
func (s *Service) PurgeExpired() (int64, error) {
	count, err := s.sessionRepo.DeleteExpired(time.Now())
	if err != nil {
		return 0, apperrors.NewStorageError("delete expired sessions", err)
	}
	return count, nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
