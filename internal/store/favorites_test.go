package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorialapp/memorial-server/internal/domain"
)

func testFavorite(userID, workID string) *domain.Favorite {
	return &domain.Favorite{
		ID:        "fav-" + userID + "-" + workID,
		UserID:    userID,
		WorkID:    workID,
		CreatedAt: time.Now(),
	}
}

func TestToggleFavorite_AddThenRemove(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	added, err := s.ToggleFavorite(ctx, testFavorite("user-1", "work-1"))
	require.NoError(t, err)
	assert.True(t, added, "first toggle adds")

	favorited, err := s.IsFavorited(ctx, "user-1", "work-1")
	require.NoError(t, err)
	assert.True(t, favorited)

	added, err = s.ToggleFavorite(ctx, testFavorite("user-1", "work-1"))
	require.NoError(t, err)
	assert.False(t, added, "second toggle removes")

	favorited, err = s.IsFavorited(ctx, "user-1", "work-1")
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestToggleFavorite_PerUserIsolation(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	_, err := s.ToggleFavorite(ctx, testFavorite("user-1", "work-1"))
	require.NoError(t, err)

	favorited, err := s.IsFavorited(ctx, "user-2", "work-1")
	require.NoError(t, err)
	assert.False(t, favorited, "another user's favorite must not leak")
}

func TestToggleFavorite_ConcurrentToggles(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	// An even number of toggles on the same pair must land on "not favorited"
	// regardless of interleaving; the toggle is a single transaction.
	const rounds = 10
	var wg sync.WaitGroup
	for range rounds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				_, err := s.ToggleFavorite(ctx, testFavorite("user-1", "work-1"))
				if err == nil {
					return
				}
				// Badger aborts conflicting transactions; retry.
			}
		}()
	}
	wg.Wait()

	favorited, err := s.IsFavorited(ctx, "user-1", "work-1")
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestListFavorites(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	_, err := s.ToggleFavorite(ctx, testFavorite("user-1", "work-1"))
	require.NoError(t, err)
	_, err = s.ToggleFavorite(ctx, testFavorite("user-1", "work-2"))
	require.NoError(t, err)
	_, err = s.ToggleFavorite(ctx, testFavorite("user-2", "work-3"))
	require.NoError(t, err)

	favorites, err := s.ListFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, favorites, 2)
	for _, f := range favorites {
		assert.Equal(t, "user-1", f.UserID)
	}

	favorites, err = s.ListFavorites(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
