package firecrawl

import (
	"context"
	"encoding/json/v2"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	}, slog.New(slog.DiscardHandler))
}

func TestSearch_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v0/search", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req searchRequest
		require.NoError(t, json.UnmarshalRead(r.Body, &req))
		assert.Equal(t, "Charles Stanley sermons", req.Query)
		assert.Equal(t, 10, req.Limit)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [
			{"title": "In Touch with Dr. Charles Stanley", "description": "Daily devotions", "url": "https://intouch.org"},
			{"snippet": "A sermon archive", "source": "intouch.org"}
		]}`))
	})

	results, err := client.Search(context.Background(), "Charles Stanley sermons", 10)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "In Touch with Dr. Charles Stanley", results[0].Title)
	assert.Equal(t, "Daily devotions", results[0].Description)
	assert.Equal(t, "https://intouch.org", results[0].URL)

	assert.Empty(t, results[1].Title)
	assert.Equal(t, "A sermon archive", results[1].Snippet)
}

func TestSearch_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Search(context.Background(), "query", 10)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestSearch_TransportError(t *testing.T) {
	client := NewClient(Config{
		APIKey: "test-key",
		// Nothing listens here; the request fails at the transport level.
		BaseURL: "http://127.0.0.1:1",
	}, slog.New(slog.DiscardHandler))

	_, err := client.Search(context.Background(), "query", 10)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport errors are not API errors")
}

func TestHasAPIKey(t *testing.T) {
	withKey := NewClient(Config{APIKey: "key"}, slog.New(slog.DiscardHandler))
	assert.True(t, withKey.HasAPIKey())

	withoutKey := NewClient(Config{}, slog.New(slog.DiscardHandler))
	assert.False(t, withoutKey.HasAPIKey())
}
