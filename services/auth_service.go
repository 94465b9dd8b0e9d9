package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"movie-catalog-backend/data_access"
	"movie-catalog-backend/helper"
	"movie-catalog-backend/models"
)

type AuthService struct {
	users     UserRepository
	reviews   ReviewRepository
	jwtSecret string
	jwtExpiry time.Duration
	logger    zerolog.Logger
}

func NewAuthService(users UserRepository, reviews ReviewRepository, jwtSecret string, jwtExpiry time.Duration, logger zerolog.Logger) *AuthService {
	return &AuthService{
		users:     users,
		reviews:   reviews,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		logger:    logger.With().Str("service", "auth").Logger(),
	}
}

// Register creates an account and returns a signed token with the user
// summary. The plaintext password is hashed immediately and never logged.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := helper.NormalizeEmail(req.Email)

	if !helper.ValidPassword(req.Password) {
		return nil, newValidationError(models.FieldError{
			Field:   "password",
			Message: "must contain at least one uppercase letter, one lowercase letter, and one number",
		})
	}

	if err := s.checkIdentityFree(ctx, username, email); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  username,
		Email:     email,
		Password:  string(hashedPassword),
		Favorites: []models.Favorite{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique indexes close the race the pre-check leaves open.
		if errors.Is(err, data_access.ErrDuplicate) {
			return nil, ErrUserExists
		}
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, err
	}

	return s.authResponse(user)
}

// Login verifies the credential and issues a fresh token. Failures never
// reveal whether the email or the password was wrong.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, helper.NormalizeEmail(req.Email))
	if errors.Is(err, data_access.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// Profile returns the user's own record; the password hash is excluded by the
// model's json tags.
func (s *AuthService) Profile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, data_access.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes username, email and/or password. Identity changes are
// checked for duplicates; a password change requires the current password.
func (s *AuthService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username := strings.TrimSpace(req.Username); username != "" && username != user.Username {
		if _, err := s.users.FindByUsername(ctx, username); err == nil {
			return nil, ErrUserExists
		} else if !errors.Is(err, data_access.ErrNotFound) {
			return nil, err
		}
		user.Username = username
	}

	if email := helper.NormalizeEmail(req.Email); email != "" && email != user.Email {
		if _, err := s.users.FindByEmail(ctx, email); err == nil {
			return nil, ErrUserExists
		} else if !errors.Is(err, data_access.ErrNotFound) {
			return nil, err
		}
		user.Email = email
	}

	if req.NewPassword != "" {
		if req.CurrentPassword == "" {
			return nil, newValidationError(models.FieldError{
				Field:   "currentPassword",
				Message: "current password is required to set a new password",
			})
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			return nil, newValidationError(models.FieldError{
				Field:   "currentPassword",
				Message: "current password is incorrect",
			})
		}
		if !helper.ValidPassword(req.NewPassword) {
			return nil, newValidationError(models.FieldError{
				Field:   "newPassword",
				Message: "must contain at least one uppercase letter, one lowercase letter, and one number",
			})
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, data_access.ErrDuplicate) {
			return nil, ErrUserExists
		}
		if errors.Is(err, data_access.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user, nil
}

// DeleteAccount removes the user and cascades to their reviews so the review
// listing never references a deleted owner.
func (s *AuthService) DeleteAccount(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, data_access.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.reviews.DeleteAllForUser(ctx, userID); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID.Hex()).Msg("failed to cascade review deletion")
		return err
	}

	return nil
}

func (s *AuthService) checkIdentityFree(ctx context.Context, username, email string) error {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, data_access.ErrNotFound) {
		return err
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return ErrUserExists
	} else if !errors.Is(err, data_access.ErrNotFound) {
		return err
	}

	return nil
}

func (s *AuthService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, err := helper.GenerateToken(user.ID.Hex(), s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user.Summary(),
	}, nil
}
