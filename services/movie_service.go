package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"movie-catalog-backend/data_access"
	"movie-catalog-backend/models"
)

// trendingMovieIDs is a curated stand-in for a trending feed; the provider
// has no trending endpoint.
var trendingMovieIDs = []string{
	"tt0111161", // The Shawshank Redemption
	"tt0068646", // The Godfather
	"tt0468569", // The Dark Knight
	"tt0110912", // Pulp Fiction
	"tt0109830", // Forrest Gump
	"tt1375666", // Inception
	"tt0133093", // The Matrix
	"tt0816692", // Interstellar
	"tt0137523", // Fight Club
	"tt0120737", // The Lord of the Rings: The Fellowship of the Ring
}

const trendingConcurrency = 4

type MovieService struct {
	omdb   *data_access.OMDBClient
	logger zerolog.Logger
}

func NewMovieService(omdb *data_access.OMDBClient, logger zerolog.Logger) *MovieService {
	return &MovieService{
		omdb:   omdb,
		logger: logger.With().Str("service", "movie").Logger(),
	}
}

// Search proxies a title search to the provider.
func (s *MovieService) Search(ctx context.Context, query string) (*models.OmdbSearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, newValidationError(models.FieldError{
			Field:   "query",
			Message: "query is required",
		})
	}

	result, err := s.omdb.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, s.classify(err, "search")
	}
	return result, nil
}

// Detail proxies a fetch-by-id to the provider.
func (s *MovieService) Detail(ctx context.Context, imdbID string) (*models.OmdbDetailResponse, error) {
	result, err := s.omdb.FetchByID(ctx, imdbID)
	if err != nil {
		return nil, s.classify(err, "detail")
	}
	return result, nil
}

// Trending fetches the curated list concurrently. Entries that fail to load
// are dropped; the call fails only when nothing could be fetched.
func (s *MovieService) Trending(ctx context.Context) ([]*models.OmdbDetailResponse, error) {
	results := make([]*models.OmdbDetailResponse, len(trendingMovieIDs))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(trendingConcurrency)

	for i, imdbID := range trendingMovieIDs {
		i, imdbID := i, imdbID
		group.Go(func() error {
			movie, err := s.omdb.FetchByID(groupCtx, imdbID)
			if err != nil {
				s.logger.Warn().Err(err).Str("imdb_id", imdbID).Msg("trending entry fetch failed")
				return nil
			}
			results[i] = movie
			return nil
		})
	}
	// Workers only log failures, so Wait cannot return an error here.
	_ = group.Wait()

	movies := make([]*models.OmdbDetailResponse, 0, len(results))
	for _, movie := range results {
		if movie != nil {
			movies = append(movies, movie)
		}
	}
	if len(movies) == 0 {
		return nil, ErrUpstream
	}
	return movies, nil
}

func (s *MovieService) classify(err error, operation string) error {
	switch {
	case errors.Is(err, data_access.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, data_access.ErrUpstream):
		s.logger.Error().Err(err).Str("operation", operation).Msg("metadata provider failure")
		return ErrUpstream
	default:
		return err
	}
}
