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

func testPrayerRequest(id, userID string, anonymous bool, createdAt time.Time) *domain.PrayerRequest {
	return &domain.PrayerRequest{
		ID:          id,
		UserID:      userID,
		Request:     "Please pray for " + id,
		IsAnonymous: anonymous,
		CreatedAt:   createdAt,
	}
}

func TestCreateAndGetPrayerRequest(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()

	request := testPrayerRequest("prayer-1", "user-1", true, time.Now())
	require.NoError(t, s.CreatePrayerRequest(ctx, request))

	retrieved, err := s.GetPrayerRequest(ctx, "prayer-1")
	require.NoError(t, err)
	assert.Equal(t, request.Request, retrieved.Request)
	// Storage always keeps the author, even for anonymous requests.
	assert.Equal(t, "user-1", retrieved.UserID)
	assert.True(t, retrieved.IsAnonymous)
}

func TestListPrayerRequests_NewestFirstWithLimit(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	base := time.Now()

	for i := range 25 {
		request := testPrayerRequest(fmt.Sprintf("prayer-%02d", i), "user-1", i%2 == 0, base.Add(time.Duration(i)*time.Millisecond))
		require.NoError(t, s.CreatePrayerRequest(ctx, request))
	}

	requests, err := s.ListPrayerRequests(ctx, 20)
	require.NoError(t, err)
	assert.Len(t, requests, 20)
	assert.Equal(t, "prayer-24", requests[0].ID)
	for i := 1; i < len(requests); i++ {
		assert.True(t, !requests[i].CreatedAt.After(requests[i-1].CreatedAt))
	}
}

func TestListPrayerRequests_Empty(t *testing.T) {
	s, cleanup := setupTestStore(t)
	defer cleanup()

	requests, err := s.ListPrayerRequests(context.Background(), 20)
	require.NoError(t, err)
	assert.Empty(t, requests)
}
