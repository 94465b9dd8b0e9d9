package services

import (
	"errors"

	"movie-catalog-backend/models"
)

// Common service errors, matched with errors.Is at the HTTP boundary.
var (
	ErrUserExists         = errors.New("user with this email or username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("resource not found")
	ErrFavoriteExists     = errors.New("movie is already in favorites")
	ErrUpstream           = errors.New("movie data provider unavailable")
)

// ValidationError carries field-level detail for malformed input.
type ValidationError struct {
	Message string
	Fields  []models.FieldError
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(fields ...models.FieldError) *ValidationError {
	return &ValidationError{Message: "Validation failed", Fields: fields}
}
