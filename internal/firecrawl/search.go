package firecrawl

import (
	"bytes"
	"context"
	"encoding/json/v2"
	"fmt"
	"net/http"
)

const searchPath = "/v0/search"

// APIError reports a non-2xx response from the Firecrawl API.
// Callers can distinguish it from transport errors to pick fallback behavior.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("firecrawl API returned status %d", e.StatusCode)
}

// Search runs a search query against the Firecrawl API.
// Returns the raw results; transport failures and non-2xx statuses are
// returned as errors (the latter as *APIError).
func (c *Client) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if err := c.wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	body, err := json.Marshal(searchRequest{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	c.logger.Debug("searching Firecrawl",
		"query", query,
		"limit", limit,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode}
	}

	var searchResp searchResponse
	if err := json.UnmarshalRead(resp.Body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	c.logger.Debug("Firecrawl search results",
		"query", query,
		"count", len(searchResp.Results),
	)

	return searchResp.Results, nil
}
