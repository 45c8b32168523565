package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents an error when an operation conflicts with
// existing state, e.g. deleting a team that still has members
type ConflictError struct {
	Entity  string
	Context string
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s conflict: %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s conflict", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors.
// Handlers surface it as 401 with a redirect-to-login hint.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// StorageError represents a transaction or connection failure in the
// persistence layer. Not recoverable by the caller; logged for operators.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrMemberNotFound  = &NotFoundError{Entity: "member"}
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrSessionNotFound = &NotFoundError{Entity: "session"}
)

// Conflict Errors
var (
	ErrTeamHasMembers = &ConflictError{Entity: "team", Context: "team still has members; delete or reassign them first"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrUnauthenticated    = &AuthenticationError{Message: "authentication required"}
	ErrSessionExpired     = &AuthenticationError{Message: "session has expired"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsStorage checks if an error is a StorageError
func IsStorage(err error) bool {
	var storageErr *StorageError
	return errors.As(err, &storageErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewStorageError wraps a driver error with the failing operation
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
