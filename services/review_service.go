package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog-backend/data_access"
	"movie-catalog-backend/models"
)

const maxReviewLength = 1000

type ReviewService struct {
	reviews ReviewRepository
	logger  zerolog.Logger
}

func NewReviewService(reviews ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		logger:  logger.With().Str("service", "review").Logger(),
	}
}

// Upsert creates or overwrites the user's single review for a movie. The
// storage layer performs the create-or-replace atomically.
func (s *ReviewService) Upsert(ctx context.Context, userID primitive.ObjectID, movieID string, req *models.UpsertReviewRequest) (*models.Review, error) {
	text := strings.TrimSpace(req.Review)

	var fieldErrors []models.FieldError
	if req.Rating < 1 || req.Rating > 5 {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "rating",
			Message: "must be an integer between 1 and 5",
		})
	}
	if text == "" {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "review",
			Message: "review text must not be empty",
		})
	} else if len(text) > maxReviewLength {
		fieldErrors = append(fieldErrors, models.FieldError{
			Field:   "review",
			Message: "review text must be at most 1000 characters long",
		})
	}
	if len(fieldErrors) > 0 {
		return nil, newValidationError(fieldErrors...)
	}

	review, err := s.reviews.Upsert(ctx, userID, movieID, req.Rating, text)
	if err != nil {
		s.logger.Error().Err(err).Str("movie_id", movieID).Msg("review upsert failed")
		return nil, err
	}
	return review, nil
}

// Delete removes the user's review for a movie; deleting a non-existent
// review is not an error.
func (s *ReviewService) Delete(ctx context.Context, userID primitive.ObjectID, movieID string) error {
	return s.reviews.Delete(ctx, userID, movieID)
}

// ListForMovie returns all reviews for a movie, newest first, with the
// reviewer's username joined in.
func (s *ReviewService) ListForMovie(ctx context.Context, movieID string) ([]models.MovieReview, error) {
	return s.reviews.ListForMovie(ctx, movieID)
}

// GetOwn returns the user's review for a movie, or nil when there is none.
func (s *ReviewService) GetOwn(ctx context.Context, userID primitive.ObjectID, movieID string) (*models.Review, error) {
	review, err := s.reviews.FindOwn(ctx, userID, movieID)
	if errors.Is(err, data_access.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return review, nil
}
