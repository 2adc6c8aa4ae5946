package scout

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/fairplay-nil/backend/pkg/httputil"
	"github.com/fairplay-nil/backend/pkg/logger"
)

// Client fetches public recruiting rankings pages. All rankings HTTP
// traffic goes through this client so pacing applies in one place.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new rankings client
func NewClient(httpClient *httputil.Client, baseURL string, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    baseURL,
	}
}

// ScoutedAthlete is one row scraped from a rankings page
type ScoutedAthlete struct {
	Rank       int    `json:"rank"`
	Name       string `json:"name"`
	Sport      string `json:"sport"`
	School     string `json:"school"`
	State      string `json:"state"`
	StarRating int    `json:"star_rating"` // 1-5
}

// fetchHTML fetches one rankings page
func (c *Client) fetchHTML(ctx context.Context, path string, params url.Values) (string, error) {
	fullURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if len(params) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, params.Encode())
	}

	resp, err := c.httpClient.Get(ctx, fullURL)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
