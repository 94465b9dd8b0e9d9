package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"movie-catalog-backend/models"
)

func newFavoritesServiceForTest(t *testing.T) (*FavoritesService, primitive.ObjectID) {
	t.Helper()
	users := newMockUserRepository()
	user := &models.User{Username: "alice", Email: "a@x.com", Favorites: []models.Favorite{}}
	require.NoError(t, users.Create(context.Background(), user))
	return NewFavoritesService(users, zerolog.Nop()), user.ID
}

func TestAddFavorite(t *testing.T) {
	svc, userID := newFavoritesServiceForTest(t)

	favorites, err := svc.Add(context.Background(), userID, &models.AddFavoriteRequest{
		IMDBID: "tt1",
		Title:  "Test Movie",
		Poster: "https://example.com/p.jpg",
		Year:   "1999",
	})
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "tt1", favorites[0].IMDBID)
	assert.Equal(t, "Test Movie", favorites[0].Title)
}

func TestAddFavoriteNormalizesMissingFields(t *testing.T) {
	svc, userID := newFavoritesServiceForTest(t)

	favorites, err := svc.Add(context.Background(), userID, &models.AddFavoriteRequest{
		IMDBID: "tt1",
		Title:  "Test Movie",
	})
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "N/A", favorites[0].Poster)
	assert.Equal(t, "N/A", favorites[0].Year)
}

func TestAddDuplicateFavorite(t *testing.T) {
	svc, userID := newFavoritesServiceForTest(t)

	_, err := svc.Add(context.Background(), userID, &models.AddFavoriteRequest{IMDBID: "tt1", Title: "Test Movie"})
	require.NoError(t, err)

	_, err = svc.Add(context.Background(), userID, &models.AddFavoriteRequest{IMDBID: "tt1", Title: "Test Movie"})
	assert.ErrorIs(t, err, ErrFavoriteExists)

	favorites, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)
}

func TestRemoveFavoriteIsIdempotent(t *testing.T) {
	svc, userID := newFavoritesServiceForTest(t)

	_, err := svc.Add(context.Background(), userID, &models.AddFavoriteRequest{IMDBID: "tt1", Title: "Test Movie"})
	require.NoError(t, err)

	favorites, err := svc.Remove(context.Background(), userID, "tt1")
	require.NoError(t, err)
	assert.Empty(t, favorites)

	// Removing something never added is a no-op success, not an error.
	favorites, err = svc.Remove(context.Background(), userID, "tt-unknown")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestFavoritesUnknownUser(t *testing.T) {
	svc, _ := newFavoritesServiceForTest(t)
	unknown := primitive.NewObjectID()

	_, err := svc.Add(context.Background(), unknown, &models.AddFavoriteRequest{IMDBID: "tt1", Title: "Test Movie"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.List(context.Background(), unknown)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListFavoritesNeverNil(t *testing.T) {
	svc, userID := newFavoritesServiceForTest(t)

	favorites, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)
}
