package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTributes_CreateRequiresAuth(t *testing.T) {
	ts := setupTestServer(t, nil)

	resp := ts.api.Post("/api/v1/tributes", map[string]any{
		"message":     "A life well lived.",
		"author_name": "Anonymous",
	})
	require.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestTributes_CreateAndList(t *testing.T) {
	ts := setupTestServer(t, nil)
	token, userID := ts.signInGuest(t, "Griever")

	resp := ts.api.Post("/api/v1/tributes", "Authorization: "+token, map[string]any{
		"message":     "His teaching carried me through hard years.",
		"author_name": "Sarah M.",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	created := decodeBody[TributeResponse](t, resp.Body.Bytes())
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, userID, created.UserID)

	// The wall is public.
	resp = ts.api.Get("/api/v1/tributes")
	require.Equal(t, http.StatusOK, resp.Code)
	list := decodeBody[ListTributesResponse](t, resp.Body.Bytes())
	require.Len(t, list.Tributes, 1)
	assert.Equal(t, "Sarah M.", list.Tributes[0].AuthorName)
}

func TestTributes_CreateEmptyMessage(t *testing.T) {
	ts := setupTestServer(t, nil)
	token, _ := ts.signInGuest(t, "Empty")

	resp := ts.api.Post("/api/v1/tributes", "Authorization: "+token, map[string]any{
		"message":     "   ",
		"author_name": "Someone",
	})
	require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
}

func TestTributes_DeleteOwnership(t *testing.T) {
	ts := setupTestServer(t, nil)
	ownerToken, _ := ts.signInGuest(t, "Owner")
	otherToken, _ := ts.signInGuest(t, "Other")

	resp := ts.api.Post("/api/v1/tributes", "Authorization: "+ownerToken, map[string]any{
		"message":     "With gratitude.",
		"author_name": "James",
	})
	require.Equal(t, http.StatusOK, resp.Code)
	created := decodeBody[TributeResponse](t, resp.Body.Bytes())

	// Someone else cannot delete it.
	resp = ts.api.Delete("/api/v1/tributes/"+created.ID, "Authorization: "+otherToken)
	require.Equal(t, http.StatusForbidden, resp.Code, resp.Body.String())

	// The owner can.
	resp = ts.api.Delete("/api/v1/tributes/"+created.ID, "Authorization: "+ownerToken)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	// Deleting again is a 404.
	resp = ts.api.Delete("/api/v1/tributes/"+created.ID, "Authorization: "+ownerToken)
	require.Equal(t, http.StatusNotFound, resp.Code)
}
