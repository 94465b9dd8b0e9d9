package helper

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"movie-catalog-backend/models"
)

// FieldErrors translates gin binding failures into the API's field-error
// shape. Returns nil when the error is not a validation error.
func FieldErrors(err error) []models.FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	fieldErrors := make([]models.FieldError, 0, len(ve))
	for _, fe := range ve {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   lowerFirst(fe.Field()),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrors
}

func fieldMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// ValidPassword reports whether the password carries at least one uppercase
// letter, one lowercase letter and one digit. Length is checked by binding.
func ValidPassword(password string) bool {
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// NormalizeEmail lowercases and trims an email address before comparison or
// storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
