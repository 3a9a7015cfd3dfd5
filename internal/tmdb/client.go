package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sebastiantruijens/moviesearch/internal/logger"
)

// Client handles interactions with The Movie Database API
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchMovies fetches one page of movies matching query. Movies without a
// poster or a backdrop are dropped; the page metadata is returned as sent.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*SearchPage, error) {
	const op = "tmdb.SearchMovies"

	if c.token == "" {
		return nil, &NetworkError{Op: op, Err: ErrMissingToken}
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(page))
	searchURL := fmt.Sprintf("%s/search/movie?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn("tmdb request failed", "query", query, "page", page, "error", err)
		return nil, &NetworkError{Op: op, Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Warn("tmdb returned error status", "query", query, "page", page, "status", resp.StatusCode)
		return nil, &NetworkError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("body=%s", strings.TrimSpace(string(body))),
		}
	}

	var result SearchPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &NetworkError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	received := len(result.Results)
	result.Results = filterMovies(result.Results)
	for i := range result.Results {
		result.Results[i].Title = decodeEntities(result.Results[i].Title)
		result.Results[i].Overview = cleanText(result.Results[i].Overview)
	}

	logger.Debug("tmdb search done",
		"query", query,
		"page", result.Page,
		"received", received,
		"results", len(result.Results),
		"total_pages", result.TotalPages,
		"duration", time.Since(start))

	return &result, nil
}
