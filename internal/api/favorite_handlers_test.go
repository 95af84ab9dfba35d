package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedOneWork inserts the built-in catalog and returns one work ID.
func seedOneWork(t *testing.T, ts *testServer) string {
	t.Helper()

	resp := ts.api.Post("/api/v1/works/seed", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/works")
	require.Equal(t, http.StatusOK, resp.Code)
	list := decodeBody[ListWorksResponse](t, resp.Body.Bytes())
	require.NotEmpty(t, list.Works)

	return list.Works[0].ID
}

func TestFavorites_AnonymousNeutrality(t *testing.T) {
	ts := setupTestServer(t, nil)
	workID := seedOneWork(t, ts)

	// Anonymous visitors get an empty list, not an error.
	resp := ts.api.Get("/api/v1/favorites")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	list := decodeBody[ListFavoritesResponse](t, resp.Body.Bytes())
	assert.Empty(t, list.Favorites)

	// And a false status.
	resp = ts.api.Get("/api/v1/favorites/status?work_id=" + workID)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	status := decodeBody[FavoriteStatusResponse](t, resp.Body.Bytes())
	assert.False(t, status.Favorited)

	// Toggling still requires authentication.
	resp = ts.api.Post("/api/v1/favorites/toggle", map[string]any{"work_id": workID})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestFavorites_ToggleAndList(t *testing.T) {
	ts := setupTestServer(t, nil)
	workID := seedOneWork(t, ts)
	token, _ := ts.signInGuest(t, "Favoriter")

	resp := ts.api.Post("/api/v1/favorites/toggle", "Authorization: "+token,
		map[string]any{"work_id": workID})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	toggle := decodeBody[ToggleFavoriteResponse](t, resp.Body.Bytes())
	assert.True(t, toggle.Added)

	resp = ts.api.Get("/api/v1/favorites/status?work_id="+workID, "Authorization: "+token)
	require.Equal(t, http.StatusOK, resp.Code)
	status := decodeBody[FavoriteStatusResponse](t, resp.Body.Bytes())
	assert.True(t, status.Favorited)

	resp = ts.api.Get("/api/v1/favorites", "Authorization: "+token)
	require.Equal(t, http.StatusOK, resp.Code)
	list := decodeBody[ListFavoritesResponse](t, resp.Body.Bytes())
	require.Len(t, list.Favorites, 1)
	assert.Equal(t, workID, list.Favorites[0].ID)
	assert.NotEmpty(t, list.Favorites[0].FavoriteID)

	// Toggle back off.
	resp = ts.api.Post("/api/v1/favorites/toggle", "Authorization: "+token,
		map[string]any{"work_id": workID})
	require.Equal(t, http.StatusOK, resp.Code)
	toggle = decodeBody[ToggleFavoriteResponse](t, resp.Body.Bytes())
	assert.False(t, toggle.Added)

	resp = ts.api.Get("/api/v1/favorites", "Authorization: "+token)
	list = decodeBody[ListFavoritesResponse](t, resp.Body.Bytes())
	assert.Empty(t, list.Favorites)
}

func TestFavorites_PerUserIsolation(t *testing.T) {
	ts := setupTestServer(t, nil)
	workID := seedOneWork(t, ts)
	firstToken, _ := ts.signInGuest(t, "First")
	secondToken, _ := ts.signInGuest(t, "Second")

	resp := ts.api.Post("/api/v1/favorites/toggle", "Authorization: "+firstToken,
		map[string]any{"work_id": workID})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/favorites/status?work_id="+workID, "Authorization: "+secondToken)
	require.Equal(t, http.StatusOK, resp.Code)
	status := decodeBody[FavoriteStatusResponse](t, resp.Body.Bytes())
	assert.False(t, status.Favorited)
}
