package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"movie-catalog-backend/models"
)

const omdbTimeout = 10 * time.Second

// OMDBClient is a stateless client for the OMDb metadata provider. Provider
// failures are classified into ErrUpstream / ErrNotFound; the raw provider
// body never reaches callers as an error message.
type OMDBClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	group      singleflight.Group
}

func NewOMDBClient(apiKey, baseURL string) *OMDBClient {
	return &OMDBClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: omdbTimeout,
		},
	}
}

// Search queries the provider by title. A "Movie not found!" reply is a valid
// empty result set, not an error.
func (c *OMDBClient) Search(ctx context.Context, query string) (*models.OmdbSearchResponse, error) {
	var result models.OmdbSearchResponse
	if err := c.get(ctx, url.Values{"s": {query}}, &result); err != nil {
		return nil, err
	}

	if result.Response != "True" {
		if strings.Contains(strings.ToLower(result.Error), "not found") {
			return &models.OmdbSearchResponse{
				Search:   []models.OmdbSearchItem{},
				Response: "True",
			}, nil
		}
		return nil, fmt.Errorf("%w: provider rejected search", ErrUpstream)
	}

	return &result, nil
}

// FetchByID fetches the full detail record for one IMDb id. Concurrent
// requests for the same id collapse into a single provider call.
func (c *OMDBClient) FetchByID(ctx context.Context, imdbID string) (*models.OmdbDetailResponse, error) {
	value, err, _ := c.group.Do(imdbID, func() (interface{}, error) {
		var result models.OmdbDetailResponse
		if err := c.get(ctx, url.Values{"i": {imdbID}}, &result); err != nil {
			return nil, err
		}

		if result.Response != "True" {
			// OMDb answers "Incorrect IMDb ID." or "Error getting data."
			// for unknown ids; either way the title does not exist.
			return nil, ErrNotFound
		}
		return &result, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*models.OmdbDetailResponse), nil
}

func (c *OMDBClient) get(ctx context.Context, params url.Values, out interface{}) error {
	params.Set("apikey", c.apiKey)
	requestURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", ErrUpstream, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUpstream, err)
	}
	return nil
}
