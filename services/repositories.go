package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog-backend/models"
)

// UserRepository is the persistence surface the user-facing services consume.
// Implemented by data_access.UserRepository; mocked in tests.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	PushFavorite(ctx context.Context, userID primitive.ObjectID, favorite models.Favorite) error
	PullFavorite(ctx context.Context, userID primitive.ObjectID, imdbID string) error
	Favorites(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error)
}

// ReviewRepository is the persistence surface of the review service.
type ReviewRepository interface {
	Upsert(ctx context.Context, userID primitive.ObjectID, movieID string, rating int, text string) (*models.Review, error)
	Delete(ctx context.Context, userID primitive.ObjectID, movieID string) error
	FindOwn(ctx context.Context, userID primitive.ObjectID, movieID string) (*models.Review, error)
	ListForMovie(ctx context.Context, movieID string) ([]models.MovieReview, error)
	DeleteAllForUser(ctx context.Context, userID primitive.ObjectID) error
}
