package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"movie-catalog-backend/data_access"
)

func newMovieServiceForTest(t *testing.T, handler http.HandlerFunc) *MovieService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := data_access.NewOMDBClient("test-key", server.URL+"/")
	return NewMovieService(client, zerolog.Nop())
}

func omdbFake(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))

		if query := r.URL.Query().Get("s"); query != "" {
			if query == "nothing" {
				fmt.Fprint(w, `{"Response":"False","Error":"Movie not found!"}`)
				return
			}
			fmt.Fprint(w, `{"Search":[{"Title":"The Matrix","Year":"1999","imdbID":"tt0133093","Type":"movie","Poster":"N/A"}],"totalResults":"1","Response":"True"}`)
			return
		}

		if id := r.URL.Query().Get("i"); id != "" {
			if id == "tt-bad" {
				fmt.Fprint(w, `{"Response":"False","Error":"Incorrect IMDb ID."}`)
				return
			}
			fmt.Fprintf(w, `{"Response":"True","Title":"Movie %s","Year":"2000","imdbID":"%s"}`, id, id)
			return
		}

		w.WriteHeader(http.StatusBadRequest)
	}
}

func TestSearchProxiesProvider(t *testing.T) {
	svc := newMovieServiceForTest(t, omdbFake(t))

	result, err := svc.Search(context.Background(), "matrix")
	require.NoError(t, err)
	require.Len(t, result.Search, 1)
	assert.Equal(t, "tt0133093", result.Search[0].ImdbID)
}

func TestSearchNoResultsIsEmptyNotError(t *testing.T) {
	svc := newMovieServiceForTest(t, omdbFake(t))

	result, err := svc.Search(context.Background(), "nothing")
	require.NoError(t, err)
	assert.Empty(t, result.Search)
	assert.Equal(t, "True", result.Response)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := newMovieServiceForTest(t, omdbFake(t))

	_, err := svc.Search(context.Background(), "   ")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestDetail(t *testing.T) {
	svc := newMovieServiceForTest(t, omdbFake(t))

	movie, err := svc.Detail(context.Background(), "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, "tt0133093", movie.ImdbID)

	_, err = svc.Detail(context.Background(), "tt-bad")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpstreamFailureIsClassifiedAndNotLeaked(t *testing.T) {
	svc := newMovieServiceForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, "secret provider stack trace")
	})

	_, err := svc.Search(context.Background(), "matrix")
	require.ErrorIs(t, err, ErrUpstream)
	assert.NotContains(t, err.Error(), "secret")
}

func TestTrendingFetchesCuratedList(t *testing.T) {
	svc := newMovieServiceForTest(t, omdbFake(t))

	movies, err := svc.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, movies, len(trendingMovieIDs))

	// Order follows the curated list despite the concurrent fan-out.
	for i, movie := range movies {
		assert.Equal(t, trendingMovieIDs[i], movie.ImdbID)
	}
}

func TestTrendingDropsFailedEntries(t *testing.T) {
	fake := omdbFake(t)
	svc := newMovieServiceForTest(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("i") == trendingMovieIDs[0] {
			fmt.Fprint(w, `{"Response":"False","Error":"Error getting data."}`)
			return
		}
		fake(w, r)
	})

	movies, err := svc.Trending(context.Background())
	require.NoError(t, err)
	assert.Len(t, movies, len(trendingMovieIDs)-1)
}

func TestTrendingAllFailed(t *testing.T) {
	svc := newMovieServiceForTest(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := svc.Trending(context.Background())
	assert.ErrorIs(t, err, ErrUpstream)
}
