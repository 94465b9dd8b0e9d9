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

// noDataSentinel marks a missing poster or year; OMDb itself uses the same
// value, so favorites saved from provider payloads stay consistent.
const noDataSentinel = "N/A"

type FavoritesService struct {
	users  UserRepository
	logger zerolog.Logger
}

func NewFavoritesService(users UserRepository, logger zerolog.Logger) *FavoritesService {
	return &FavoritesService{
		users:  users,
		logger: logger.With().Str("service", "favorites").Logger(),
	}
}

// Add appends the movie to the user's favorites and returns the updated list.
// Adding a movie that is already present fails with ErrFavoriteExists.
func (s *FavoritesService) Add(ctx context.Context, userID primitive.ObjectID, req *models.AddFavoriteRequest) ([]models.Favorite, error) {
	favorite := models.Favorite{
		IMDBID: strings.TrimSpace(req.IMDBID),
		Title:  strings.TrimSpace(req.Title),
		Poster: orSentinel(req.Poster),
		Year:   orSentinel(req.Year),
	}

	if err := s.users.PushFavorite(ctx, userID, favorite); err != nil {
		switch {
		case errors.Is(err, data_access.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, data_access.ErrDuplicate):
			return nil, ErrFavoriteExists
		default:
			return nil, err
		}
	}

	return s.List(ctx, userID)
}

// Remove deletes the movie from the user's favorites and returns the updated
// list. Removing a movie that was never added is a no-op success.
func (s *FavoritesService) Remove(ctx context.Context, userID primitive.ObjectID, imdbID string) ([]models.Favorite, error) {
	if err := s.users.PullFavorite(ctx, userID, imdbID); err != nil {
		if errors.Is(err, data_access.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.List(ctx, userID)
}

func (s *FavoritesService) List(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	favorites, err := s.users.Favorites(ctx, userID)
	if errors.Is(err, data_access.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

func orSentinel(value string) string {
	if strings.TrimSpace(value) == "" {
		return noDataSentinel
	}
	return strings.TrimSpace(value)
}
