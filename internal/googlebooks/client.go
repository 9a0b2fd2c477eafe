// Package googlebooks is a client for the Google Books volumes API: query
// construction, single-page fetches and pagination until exhaustion.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"libris/internal/ratelimit"
)

// PageSize is the number of volumes requested per round trip.
const PageSize = 40

var defaultBaseURL = "https://www.googleapis.com/books/v1"

// Client talks to the Google Books volumes endpoint.
type Client struct {
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	baseURL    string
	apiKey     string
}

// NewClient creates a Google Books client. The API key may be empty; the
// provider accepts unauthenticated requests at a lower quota.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    ratelimit.New("GoogleBooks", 1),
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
	}
}

// FetchPage performs exactly one round trip at the given start offset. A
// response without items yields the empty-page sentinel, not an error.
// Transport failures and non-200 responses are returned to the caller
// unretried; retry policy belongs to whoever drives the pagination.
func (c *Client) FetchPage(ctx context.Context, query string, startIndex int) (*Page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait failed: %w", err)
	}

	url := fmt.Sprintf("%s/volumes?q=%s&orderBy=newest&startIndex=%d&maxResults=%d",
		c.baseURL, query, startIndex, PageSize)
	if c.apiKey != "" {
		url = fmt.Sprintf("%s&key=%s", url, c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google Books API request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google Books API returned status %d for startIndex %d", resp.StatusCode, startIndex)
	}

	var result volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode Google Books response: %w", err)
	}

	if len(result.Items) == 0 {
		// Sentinel: nothing more to fetch at this offset.
		return &Page{StartIndex: startIndex}, nil
	}

	return &Page{
		Items:      result.Items,
		TotalItems: result.TotalItems,
		StartIndex: startIndex,
	}, nil
}
