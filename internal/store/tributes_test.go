package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memorialapp/memorial-server/internal/domain"
)

func testTribute(id, userID string, createdAt time.Time) *domain.Tribute {
	return &domain.Tribute{
		ID:         id,
		UserID:     userID,
		AuthorName: "Author of " + id,
		Message:    "A message of remembrance",
		CreatedAt:  createdAt,
	}
}

func TestCreateAndGetTribute(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	tribute := testTribute("tribute-1", "user-1", time.Now())
	require.NoError(t, s.CreateTribute(ctx, tribute))

	retrieved, err := s.GetTribute(ctx, "tribute-1")
	require.NoError(t, err)
	assert.Equal(t, tribute.Message, retrieved.Message)
	assert.Equal(t, tribute.UserID, retrieved.UserID)
}

func TestListTributes_NewestFirst(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now()

	for i := range 5 {
		tribute := testTribute(fmt.Sprintf("tribute-%d", i), "user-1", base.Add(time.Duration(i)*time.Second))
		require.NoError(t, s.CreateTribute(ctx, tribute))
	}

	tributes, err := s.ListTributes(ctx, 50)
	require.NoError(t, err)
	require.Len(t, tributes, 5)

	// Newest first.
	assert.Equal(t, "tribute-4", tributes[0].ID)
	assert.Equal(t, "tribute-0", tributes[4].ID)
	for i := 1; i < len(tributes); i++ {
		assert.True(t, !tributes[i].CreatedAt.After(tributes[i-1].CreatedAt))
	}
}

func TestListTributes_Limit(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now()

	for i := range 60 {
		tribute := testTribute(fmt.Sprintf("tribute-%02d", i), "user-1", base.Add(time.Duration(i)*time.Millisecond))
		require.NoError(t, s.CreateTribute(ctx, tribute))
	}

	tributes, err := s.ListTributes(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, tributes, 50)
	// The newest entries survive the cap.
	assert.Equal(t, "tribute-59", tributes[0].ID)
}

func TestDeleteTribute(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	require.NoError(t, s.CreateTribute(ctx, testTribute("tribute-1", "user-1", time.Now())))
	require.NoError(t, s.DeleteTribute(ctx, "tribute-1"))

	_, err := s.GetTribute(ctx, "tribute-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// The feed index entry is removed with the tribute.
	tributes, err := s.ListTributes(ctx, 50)
	require.NoError(t, err)
	assert.Empty(t, tributes)
}

func TestDeleteTribute_NotFound(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	err := s.DeleteTribute(context.Background(), "tribute-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
