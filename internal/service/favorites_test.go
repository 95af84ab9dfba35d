package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesToggle_Parity(t *testing.T) {
	s := setupTestStore(t)
	works := newWorksService(t, s, nil)
	favorites := NewFavoritesService(s, testLogger())
	ctx := context.Background()

	work, err := works.Add(ctx, "How to Listen to God", "", "Published 1985", "book", "")
	require.NoError(t, err)

	added, err := favorites.Toggle(ctx, "user-1", work.ID)
	require.NoError(t, err)
	assert.True(t, added)

	favorited, err := favorites.IsFavorited(ctx, "user-1", work.ID)
	require.NoError(t, err)
	assert.True(t, favorited)

	added, err = favorites.Toggle(ctx, "user-1", work.ID)
	require.NoError(t, err)
	assert.False(t, added)

	favorited, err = favorites.IsFavorited(ctx, "user-1", work.ID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoritesList_JoinsWorks(t *testing.T) {
	s := setupTestStore(t)
	works := newWorksService(t, s, nil)
	favorites := NewFavoritesService(s, testLogger())
	ctx := context.Background()

	first, err := works.Add(ctx, "Finding Peace", "", "Published 2003", "book", "")
	require.NoError(t, err)
	second, err := works.Add(ctx, "The 30 Life Principles", "", "In Touch Ministries", "teaching", "")
	require.NoError(t, err)

	_, err = favorites.Toggle(ctx, "user-1", first.ID)
	require.NoError(t, err)
	_, err = favorites.Toggle(ctx, "user-1", second.ID)
	require.NoError(t, err)

	list, err := favorites.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, entry := range list {
		assert.NotEmpty(t, entry.FavoriteID)
		assert.NotEmpty(t, entry.Title)
	}
}

func TestFavoritesList_DropsDanglingEntries(t *testing.T) {
	s := setupTestStore(t)
	works := newWorksService(t, s, nil)
	favorites := NewFavoritesService(s, testLogger())
	ctx := context.Background()

	work, err := works.Add(ctx, "Grace", "", "In Touch Ministries", "teaching", "")
	require.NoError(t, err)

	_, err = favorites.Toggle(ctx, "user-1", work.ID)
	require.NoError(t, err)
	// A favorite referencing a work that was never stored.
	_, err = favorites.Toggle(ctx, "user-1", "work-gone")
	require.NoError(t, err)

	list, err := favorites.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1, "dangling favorites are filtered, not errors")
	assert.Equal(t, work.ID, list[0].ID)
}

func TestFavoritesList_PerUser(t *testing.T) {
	s := setupTestStore(t)
	works := newWorksService(t, s, nil)
	favorites := NewFavoritesService(s, testLogger())
	ctx := context.Background()

	work, err := works.Add(ctx, "When the Enemy Strikes", "", "Published 2004", "book", "")
	require.NoError(t, err)

	_, err = favorites.Toggle(ctx, "user-1", work.ID)
	require.NoError(t, err)

	list, err := favorites.List(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, list)

	favorited, err := favorites.IsFavorited(ctx, "user-2", work.ID)
	require.NoError(t, err)
	assert.False(t, favorited)
}
