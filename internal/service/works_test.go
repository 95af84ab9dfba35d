package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorialapp/memorial-server/internal/firecrawl"
	"github.com/memorialapp/memorial-server/internal/store"
)

// setupTestStore creates a Store backed by a temp directory.
func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "memorial-service-test-*")
	require.NoError(t, err)

	s, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	})

	return s
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeSearcher is a test double for the Firecrawl client.
type fakeSearcher struct {
	hasKey  bool
	results []firecrawl.SearchResult
	err     error
}

func (f *fakeSearcher) HasAPIKey() bool { return f.hasKey }

func (f *fakeSearcher) Search(_ context.Context, _ string, _ int) ([]firecrawl.SearchResult, error) {
	return f.results, f.err
}

func newWorksService(t *testing.T, s *store.Store, searcher Searcher) *WorksService {
	t.Helper()
	if searcher == nil {
		searcher = &fakeSearcher{}
	}
	return NewWorksService(s, searcher, "test query", 10, testLogger())
}

func TestSeedIfEmpty_Idempotent(t *testing.T) {
	s := setupTestStore(t)
	svc := newWorksService(t, s, nil)
	ctx := context.Background()

	seeded, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	works, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, works, 12)

	// Second call is a no-op.
	seeded, err = svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	works, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, works, 12)
}

func TestSeedIfEmpty_SkipsNonEmptyCatalog(t *testing.T) {
	s := setupTestStore(t)
	svc := newWorksService(t, s, nil)
	ctx := context.Background()

	// A single manually added work is enough to suppress seeding.
	_, err := svc.Add(ctx, "Finding Peace", "desc", "src", "book", "")
	require.NoError(t, err)

	seeded, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	works, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, works, 1)
}

func TestSeedCatalog_Contents(t *testing.T) {
	s := setupTestStore(t)
	svc := newWorksService(t, s, nil)
	ctx := context.Background()

	_, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)

	books, err := svc.List(ctx, "book")
	require.NoError(t, err)
	assert.Len(t, books, 6)

	ministries, err := svc.List(ctx, "ministry")
	require.NoError(t, err)
	assert.Len(t, ministries, 3)

	sermons, err := svc.List(ctx, "sermon")
	require.NoError(t, err)
	assert.Len(t, sermons, 1)

	teachings, err := svc.List(ctx, "teaching")
	require.NoError(t, err)
	assert.Len(t, teachings, 2)

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"book", "ministry", "sermon", "teaching"}, categories)
}

func TestAdd_NoDedup(t *testing.T) {
	s := setupTestStore(t)
	svc := newWorksService(t, s, nil)
	ctx := context.Background()

	first, err := svc.Add(ctx, "Finding Peace", "desc", "src", "book", "")
	require.NoError(t, err)
	second, err := svc.Add(ctx, "Finding Peace", "desc", "src", "book", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	works, err := svc.List(ctx, "book")
	require.NoError(t, err)
	assert.Len(t, works, 2)
}

func TestAdd_RequiresTitle(t *testing.T) {
	s := setupTestStore(t)
	svc := newWorksService(t, s, nil)

	_, err := svc.Add(context.Background(), "", "desc", "src", "book", "")
	require.Error(t, err)
}

func TestRefresh_NoAPIKey_SeedsOnce(t *testing.T) {
	s := setupTestStore(t)
	svc := newWorksService(t, s, &fakeSearcher{hasKey: false})
	ctx := context.Background()

	result, err := svc.RefreshFromFirecrawl(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSeeded, result.Outcome)
	assert.Equal(t, ReasonNoAPIKey, result.Reason)
	assert.Contains(t, result.Message, "no Firecrawl API key")

	works, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, works, 12)

	// Refreshing again never duplicates the catalog.
	result, err = svc.RefreshFromFirecrawl(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSeeded, result.Outcome)

	works, err = svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, works, 12)
}

func TestRefresh_APIError_FallsBackToSeed(t *testing.T) {
	s := setupTestStore(t)
	svc := newWorksService(t, s, &fakeSearcher{
		hasKey: true,
		err:    &firecrawl.APIError{StatusCode: 500},
	})
	ctx := context.Background()

	result, err := svc.RefreshFromFirecrawl(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSeeded, result.Outcome)
	assert.Equal(t, ReasonAPIError, result.Reason)
	assert.Contains(t, result.Message, "Firecrawl API error")

	works, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, works, 12)
}

func TestRefresh_TransportError_FallsBackToSeed(t *testing.T) {
	s := setupTestStore(t)
	svc := newWorksService(t, s, &fakeSearcher{
		hasKey: true,
		err:    errors.New("connection refused"),
	})
	ctx := context.Background()

	result, err := svc.RefreshFromFirecrawl(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSeeded, result.Outcome)
	assert.Equal(t, ReasonFetchError, result.Reason)
	assert.Contains(t, result.Message, "fetch error")
}

func TestRefresh_Success_IngestsAndSeeds(t *testing.T) {
	s := setupTestStore(t)
	svc := newWorksService(t, s, &fakeSearcher{
		hasKey: true,
		results: []firecrawl.SearchResult{
			{Title: "Classic Sermons Archive", Description: "Recordings", URL: "https://example.org/sermons"},
			{Snippet: "only a snippet", Source: "example.org"},
		},
	})
	ctx := context.Background()

	result, err := svc.RefreshFromFirecrawl(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIngested, result.Outcome)
	assert.Equal(t, 2, result.Ingested)
	assert.Equal(t, "Works fetched successfully", result.Message)

	// Ingested results plus the seeded catalog.
	works, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, works, 14)

	// Missing fields filled with defaults.
	var foundUntitled, foundSermon bool
	for _, w := range works {
		if w.Title == "Untitled" {
			foundUntitled = true
			assert.Equal(t, "only a snippet", w.Description)
			assert.Equal(t, "example.org", w.Source)
			// An empty title matches no keyword group.
			assert.Equal(t, "teaching", w.Category)
		}
		if w.Title == "Classic Sermons Archive" {
			foundSermon = true
			assert.Equal(t, "sermon", w.Category)
			assert.Equal(t, "Firecrawl", w.Source)
		}
	}
	assert.True(t, foundUntitled)
	assert.True(t, foundSermon)
}

func TestRefresh_SuccessWithExistingCatalog_DoesNotSeed(t *testing.T) {
	s := setupTestStore(t)
	svc := newWorksService(t, s, &fakeSearcher{
		hasKey: true,
		results: []firecrawl.SearchResult{
			{Title: "New Teaching Series"},
		},
	})
	ctx := context.Background()

	_, err := svc.SeedIfEmpty(ctx)
	require.NoError(t, err)

	result, err := svc.RefreshFromFirecrawl(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeIngested, result.Outcome)

	// 12 seeded + 1 ingested; the post-fetch seed is a no-op.
	works, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, works, 13)
}
