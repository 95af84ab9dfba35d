package api

import (
	"context"
	"encoding/hex"
	"encoding/json/v2"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"github.com/memorialapp/memorial-server/internal/auth"
	"github.com/memorialapp/memorial-server/internal/firecrawl"
	"github.com/memorialapp/memorial-server/internal/service"
	"github.com/memorialapp/memorial-server/internal/store"
)

// stubSearcher is a canned Firecrawl client for handler tests.
type stubSearcher struct {
	hasKey  bool
	results []firecrawl.SearchResult
	err     error
}

func (f *stubSearcher) HasAPIKey() bool { return f.hasKey }

func (f *stubSearcher) Search(_ context.Context, _ string, _ int) ([]firecrawl.SearchResult, error) {
	return f.results, f.err
}

// testServer wraps the API server for handler tests.
type testServer struct {
	*Server
	api humatest.TestAPI
}

// setupTestServer creates a server backed by a temp store, with a stub
// Firecrawl client.
func setupTestServer(t *testing.T, searcher service.Searcher) *testServer {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "memorial-api-test-*")
	require.NoError(t, err)

	st, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = st.Close()
		_ = os.RemoveAll(tmpDir)
	})

	authKey, err := auth.LoadOrGenerateKey(tmpDir)
	require.NoError(t, err)

	tokenService, err := auth.NewTokenService(
		hex.EncodeToString(authKey),
		15*time.Minute,
		30*24*time.Hour,
	)
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)

	if searcher == nil {
		searcher = &stubSearcher{}
	}

	sessionService := service.NewSessionService(st, tokenService, logger)
	authService := service.NewAuthService(st, tokenService, sessionService, logger)
	worksService := service.NewWorksService(st, searcher, "test query", 10, logger)

	services := &Services{
		Auth:      authService,
		Session:   sessionService,
		Works:     worksService,
		Favorites: service.NewFavoritesService(st, logger),
		Tributes:  service.NewTributesService(st, logger),
		Prayers:   service.NewPrayersService(st, logger),
	}

	s := NewServer(st, services, []string{"*"}, logger)

	return &testServer{
		Server: s,
		api:    humatest.Wrap(t, s.api),
	}
}

// signInGuest creates a guest account and returns its bearer token.
func (ts *testServer) signInGuest(t *testing.T, displayName string) (token string, userID string) {
	t.Helper()

	resp := ts.api.Post("/api/v1/auth/guest",
		"X-Forwarded-For: 198.51.100.7",
		map[string]any{"display_name": displayName},
	)
	require.Equal(t, http.StatusOK, resp.Code, "guest sign-in failed: %s", resp.Body.String())

	var authResp AuthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &authResp))

	return "Bearer " + authResp.AccessToken, authResp.User.ID
}

func decodeBody[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestHealthCheck(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp := ts.api.Get("/health")
	require.Equal(t, http.StatusOK, resp.Code)

	health := decodeBody[HealthResponse](t, resp.Body.Bytes())
	require.Equal(t, "healthy", health.Status)
	require.Equal(t, "healthy", health.Components["database"].Status)
}
