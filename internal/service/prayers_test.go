package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/memorialapp/memorial-server/internal/errors"
)

func TestPrayersCreateAndList_MasksAnonymousAuthors(t *testing.T) {
	s := setupTestStore(t)
	prayers := NewPrayersService(s, testLogger())
	ctx := context.Background()

	_, err := prayers.Create(ctx, "user-1", "Pray for my family", true)
	require.NoError(t, err)
	_, err = prayers.Create(ctx, "user-2", "Healing for a friend", false)
	require.NoError(t, err)

	list, err := prayers.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	for _, view := range list {
		if view.IsAnonymous {
			assert.Empty(t, view.UserID, "anonymous requests must not expose the author")
		} else {
			assert.Equal(t, "user-2", view.UserID)
		}
	}
}

func TestPrayersCreate_KeepsAuthorInStorage(t *testing.T) {
	s := setupTestStore(t)
	prayers := NewPrayersService(s, testLogger())
	ctx := context.Background()

	created, err := prayers.Create(ctx, "user-1", "An anonymous request", true)
	require.NoError(t, err)

	// The stored record retains the author even though reads mask it.
	stored, err := s.GetPrayerRequest(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", stored.UserID)
}

func TestPrayersCreate_RejectsEmptyRequest(t *testing.T) {
	s := setupTestStore(t)
	prayers := NewPrayersService(s, testLogger())

	_, err := prayers.Create(context.Background(), "user-1", "   ", false)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestPrayersList_CapsAtTwenty(t *testing.T) {
	s := setupTestStore(t)
	prayers := NewPrayersService(s, testLogger())
	ctx := context.Background()

	for i := range 25 {
		_, err := prayers.Create(ctx, "user-1", fmt.Sprintf("Request %d", i), i%2 == 0)
		require.NoError(t, err)
	}

	list, err := prayers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}
