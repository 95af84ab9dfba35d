package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorialapp/memorial-server/internal/firecrawl"
)

func TestListWorks_EmptyCatalog(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp := ts.api.Get("/api/v1/works")
	require.Equal(t, http.StatusOK, resp.Code)

	list := decodeBody[ListWorksResponse](t, resp.Body.Bytes())
	assert.Empty(t, list.Works)
}

func TestSeedWorks(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp := ts.api.Post("/api/v1/works/seed", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	seed := decodeBody[SeedWorksResponse](t, resp.Body.Bytes())
	assert.True(t, seed.Seeded)

	resp = ts.api.Get("/api/v1/works")
	require.Equal(t, http.StatusOK, resp.Code)
	list := decodeBody[ListWorksResponse](t, resp.Body.Bytes())
	assert.Len(t, list.Works, 12)

	// Seeding again is a no-op.
	resp = ts.api.Post("/api/v1/works/seed", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)
	seed = decodeBody[SeedWorksResponse](t, resp.Body.Bytes())
	assert.False(t, seed.Seeded)
}

func TestListWorks_CategoryFilter(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp := ts.api.Post("/api/v1/works/seed", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = ts.api.Get("/api/v1/works?category=book")
	require.Equal(t, http.StatusOK, resp.Code)
	list := decodeBody[ListWorksResponse](t, resp.Body.Bytes())
	require.Len(t, list.Works, 6)
	for _, work := range list.Works {
		assert.Equal(t, "book", work.Category)
	}

	resp = ts.api.Get("/api/v1/works/categories")
	require.Equal(t, http.StatusOK, resp.Code)
	categories := decodeBody[CategoriesResponse](t, resp.Body.Bytes())
	assert.Equal(t, []string{"book", "ministry", "sermon", "teaching"}, categories.Categories)
}

func TestAddWork(t *testing.T) {
	ts := setupTestServer(t, nil)

	body := map[string]any{
		"title":    "The Source of My Strength",
		"category": "book",
		"source":   "Published 1994",
	}

	// Requires authentication.
	resp := ts.api.Post("/api/v1/works", body)
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	token, _ := ts.signInGuest(t, "Curator")
	resp = ts.api.Post("/api/v1/works", "Authorization: "+token, body)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	work := decodeBody[WorkResponse](t, resp.Body.Bytes())
	assert.NotEmpty(t, work.ID)
	assert.Equal(t, "The Source of My Strength", work.Title)

	resp = ts.api.Get("/api/v1/works/" + work.ID)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestGetWork_NotFound(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp := ts.api.Get("/api/v1/works/work-missing")
	require.Equal(t, http.StatusNotFound, resp.Code, resp.Body.String())
}

func TestRefreshWorks_NoAPIKey(t *testing.T) {
	ts := setupTestServer(t, &stubSearcher{hasKey: false})

	resp := ts.api.Post("/api/v1/works/refresh", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	refresh := decodeBody[RefreshWorksResponse](t, resp.Body.Bytes())
	assert.True(t, refresh.Success)
	assert.Equal(t, "seeded", refresh.Outcome)
	assert.Contains(t, refresh.Message, "no Firecrawl API key")

	resp = ts.api.Get("/api/v1/works")
	list := decodeBody[ListWorksResponse](t, resp.Body.Bytes())
	assert.Len(t, list.Works, 12)
}

func TestRefreshWorks_Ingests(t *testing.T) {
	ts := setupTestServer(t, &stubSearcher{
		hasKey: true,
		results: []firecrawl.SearchResult{
			{Title: "In Touch Ministries Broadcast", URL: "https://example.org/broadcast"},
		},
	})

	resp := ts.api.Post("/api/v1/works/refresh", map[string]any{})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	refresh := decodeBody[RefreshWorksResponse](t, resp.Body.Bytes())
	assert.True(t, refresh.Success)
	assert.Equal(t, "ingested", refresh.Outcome)
	assert.Equal(t, 1, refresh.Ingested)
	assert.Equal(t, "Works fetched successfully", refresh.Message)

	// Ingested result plus the seeded catalog.
	resp = ts.api.Get("/api/v1/works")
	list := decodeBody[ListWorksResponse](t, resp.Body.Bytes())
	assert.Len(t, list.Works, 13)
}
