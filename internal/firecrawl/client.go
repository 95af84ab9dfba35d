// Package firecrawl provides a client for the Firecrawl search API, used to
// ingest works into the memorial catalog from the open web.
package firecrawl

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production Firecrawl API endpoint.
const DefaultBaseURL = "https://api.firecrawl.dev"

// Client provides access to the Firecrawl search API.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *slog.Logger
	baseURL     string
	apiKey      string
}

// Config holds Firecrawl client configuration.
type Config struct {
	// APIKey authorizes requests. May be empty; callers are expected to check
	// HasAPIKey before searching.
	APIKey string
	// BaseURL of the API. Defaults to DefaultBaseURL.
	BaseURL string
	// Timeout for search requests. Defaults to 10 seconds.
	Timeout time.Duration
}

// NewClient creates a new Firecrawl client.
// Rate limited to 10 requests per minute to stay within the free tier.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		// 10 requests per minute = 1 request per 6 seconds, burst of 3
		rateLimiter: rate.NewLimiter(rate.Every(6*time.Second), 3),
		logger:      logger,
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
	}
}

// HasAPIKey reports whether the client is configured with an API key.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// Close releases resources. Currently a no-op but included for interface consistency.
func (c *Client) Close() {
	// No persistent resources to close
}

// wait blocks until rate limiter allows a request.
func (c *Client) wait(ctx context.Context) error {
	return c.rateLimiter.Wait(ctx)
}
