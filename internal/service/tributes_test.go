package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/memorialapp/memorial-server/internal/errors"
)

func TestTributesCreateAndList(t *testing.T) {
	s := setupTestStore(t)
	tributes := NewTributesService(s, testLogger())
	ctx := context.Background()

	created, err := tributes.Create(ctx, "user-1", "He changed my life through his teaching.", "Sarah M.")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	list, err := tributes.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Sarah M.", list[0].AuthorName)
	assert.Equal(t, "user-1", list[0].UserID)
}

func TestTributesCreate_RejectsEmptyFields(t *testing.T) {
	s := setupTestStore(t)
	tributes := NewTributesService(s, testLogger())
	ctx := context.Background()

	_, err := tributes.Create(ctx, "user-1", "   ", "Sarah M.")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = tributes.Create(ctx, "user-1", "A message", "  ")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestTributesDelete_OwnerOnly(t *testing.T) {
	s := setupTestStore(t)
	tributes := NewTributesService(s, testLogger())
	ctx := context.Background()

	created, err := tributes.Create(ctx, "user-1", "With gratitude.", "James")
	require.NoError(t, err)

	// Another user cannot delete it.
	err = tributes.Delete(ctx, "user-2", created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	// The tribute is still there.
	list, err := tributes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// The owner can.
	require.NoError(t, tributes.Delete(ctx, "user-1", created.ID))

	list, err = tributes.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTributesDelete_NotFound(t *testing.T) {
	s := setupTestStore(t)
	tributes := NewTributesService(s, testLogger())

	err := tributes.Delete(context.Background(), "user-1", "tribute-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTributesList_CapsAtFifty(t *testing.T) {
	s := setupTestStore(t)
	tributes := NewTributesService(s, testLogger())
	ctx := context.Background()

	for i := range 55 {
		_, err := tributes.Create(ctx, "user-1", fmt.Sprintf("Message %d", i), "Author")
		require.NoError(t, err)
	}

	list, err := tributes.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 50)
}
