package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerPrayerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listPrayerRequests",
		Method:      http.MethodGet,
		Path:        "/api/v1/prayers",
		Summary:     "List prayer requests",
		Description: "Returns the most recent prayer requests, newest first, capped at 20. Anonymous requests carry no author.",
		Tags:        []string{"Prayers"},
	}, s.handleListPrayerRequests)

	huma.Register(s.api, huma.Operation{
		OperationID: "createPrayerRequest",
		Method:      http.MethodPost,
		Path:        "/api/v1/prayers",
		Summary:     "Submit prayer request",
		Description: "Submits a prayer request, optionally anonymous",
		Tags:        []string{"Prayers"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreatePrayerRequest)
}

// === DTOs ===

// PrayerRequestResponse contains prayer request data in API responses.
// UserID is omitted for anonymous requests.
type PrayerRequestResponse struct {
	ID          string    `json:"id" doc:"Prayer request ID"`
	UserID      string    `json:"user_id,omitempty" doc:"Author user ID, omitted for anonymous requests"`
	Request     string    `json:"request" doc:"Prayer request text"`
	IsAnonymous bool      `json:"is_anonymous" doc:"Whether the author chose anonymity"`
	CreatedAt   time.Time `json:"created_at" doc:"Creation time"`
}

// ListPrayerRequestsResponse contains the most recent prayer requests.
type ListPrayerRequestsResponse struct {
	Prayers []PrayerRequestResponse `json:"prayers" doc:"Prayer requests, newest first"`
}

// ListPrayerRequestsOutput wraps the list response for Huma.
type ListPrayerRequestsOutput struct {
	Body ListPrayerRequestsResponse
}

// CreatePrayerRequestBody is the request body for submitting a prayer request.
type CreatePrayerRequestBody struct {
	Request     string `json:"request" validate:"required,min=1,max=5000" doc:"Prayer request text"`
	IsAnonymous bool   `json:"is_anonymous,omitempty" doc:"Hide the author from readers"`
}

// CreatePrayerRequestInput wraps the create request for Huma.
type CreatePrayerRequestInput struct {
	Authorization string `header:"Authorization"`
	Body          CreatePrayerRequestBody
}

// PrayerRequestOutput wraps the prayer request response for Huma.
type PrayerRequestOutput struct {
	Body PrayerRequestResponse
}

// === Handlers ===

func (s *Server) handleListPrayerRequests(ctx context.Context, _ *struct{}) (*ListPrayerRequestsOutput, error) {
	views, err := s.services.Prayers.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]PrayerRequestResponse, len(views))
	for i, view := range views {
		resp[i] = PrayerRequestResponse{
			ID:          view.ID,
			UserID:      view.UserID,
			Request:     view.Request,
			IsAnonymous: view.IsAnonymous,
			CreatedAt:   view.CreatedAt,
		}
	}

	return &ListPrayerRequestsOutput{Body: ListPrayerRequestsResponse{Prayers: resp}}, nil
}

func (s *Server) handleCreatePrayerRequest(ctx context.Context, input *CreatePrayerRequestInput) (*PrayerRequestOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	request, err := s.services.Prayers.Create(ctx, userID, input.Body.Request, input.Body.IsAnonymous)
	if err != nil {
		return nil, err
	}

	// Echo back through the same projection readers see.
	view := request.View()

	return &PrayerRequestOutput{
		Body: PrayerRequestResponse{
			ID:          view.ID,
			UserID:      view.UserID,
			Request:     view.Request,
			IsAnonymous: view.IsAnonymous,
			CreatedAt:   view.CreatedAt,
		},
	}, nil
}
