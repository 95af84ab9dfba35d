package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/memorialapp/memorial-server/internal/domain"
)

func (s *Server) registerTributeRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTributes",
		Method:      http.MethodGet,
		Path:        "/api/v1/tributes",
		Summary:     "List tributes",
		Description: "Returns the most recent tributes, newest first, capped at 50",
		Tags:        []string{"Tributes"},
	}, s.handleListTributes)

	huma.Register(s.api, huma.Operation{
		OperationID: "createTribute",
		Method:      http.MethodPost,
		Path:        "/api/v1/tributes",
		Summary:     "Post tribute",
		Description: "Posts a tribute on the memorial wall",
		Tags:        []string{"Tributes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleCreateTribute)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteTribute",
		Method:      http.MethodDelete,
		Path:        "/api/v1/tributes/{id}",
		Summary:     "Delete tribute",
		Description: "Deletes a tribute. Only the author may delete their own tribute.",
		Tags:        []string{"Tributes"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleDeleteTribute)
}

// === DTOs ===

// TributeResponse contains tribute data in API responses.
type TributeResponse struct {
	ID         string    `json:"id" doc:"Tribute ID"`
	UserID     string    `json:"user_id" doc:"Author user ID"`
	AuthorName string    `json:"author_name" doc:"Display name chosen by the author"`
	Message    string    `json:"message" doc:"Tribute message"`
	CreatedAt  time.Time `json:"created_at" doc:"Creation time"`
}

// ListTributesResponse contains the most recent tributes.
type ListTributesResponse struct {
	Tributes []TributeResponse `json:"tributes" doc:"Tributes, newest first"`
}

// ListTributesOutput wraps the list tributes response for Huma.
type ListTributesOutput struct {
	Body ListTributesResponse
}

// CreateTributeRequest is the request body for posting a tribute.
type CreateTributeRequest struct {
	Message    string `json:"message" validate:"required,min=1,max=5000" doc:"Tribute message"`
	AuthorName string `json:"author_name" validate:"required,min=1,max=100" doc:"Display name to show with the tribute"`
}

// CreateTributeInput wraps the create tribute request for Huma.
type CreateTributeInput struct {
	Authorization string `header:"Authorization"`
	Body          CreateTributeRequest
}

// TributeOutput wraps the tribute response for Huma.
type TributeOutput struct {
	Body TributeResponse
}

// DeleteTributeInput contains parameters for deleting a tribute.
type DeleteTributeInput struct {
	Authorization string `header:"Authorization"`
	ID            string `path:"id" doc:"Tribute ID"`
}

// === Handlers ===

func (s *Server) handleListTributes(ctx context.Context, _ *struct{}) (*ListTributesOutput, error) {
	tributes, err := s.services.Tributes.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]TributeResponse, len(tributes))
	for i, tribute := range tributes {
		resp[i] = mapTribute(tribute)
	}

	return &ListTributesOutput{Body: ListTributesResponse{Tributes: resp}}, nil
}

func (s *Server) handleCreateTribute(ctx context.Context, input *CreateTributeInput) (*TributeOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	tribute, err := s.services.Tributes.Create(ctx, userID, input.Body.Message, input.Body.AuthorName)
	if err != nil {
		return nil, err
	}

	return &TributeOutput{Body: mapTribute(tribute)}, nil
}

func (s *Server) handleDeleteTribute(ctx context.Context, input *DeleteTributeInput) (*MessageOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	if err := s.services.Tributes.Delete(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	return &MessageOutput{Body: MessageResponse{Message: "Tribute deleted"}}, nil
}

// === Helpers ===

func mapTribute(tribute *domain.Tribute) TributeResponse {
	return TributeResponse{
		ID:         tribute.ID,
		UserID:     tribute.UserID,
		AuthorName: tribute.AuthorName,
		Message:    tribute.Message,
		CreatedAt:  tribute.CreatedAt,
	}
}
