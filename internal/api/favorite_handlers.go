package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/memorialapp/memorial-server/internal/domain"
)

func (s *Server) registerFavoriteRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "List favorites",
		Description: "Returns the current user's favorited works. Anonymous visitors get an empty list.",
		Tags:        []string{"Favorites"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleListFavorites)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleFavorite",
		Method:      http.MethodPost,
		Path:        "/api/v1/favorites/toggle",
		Summary:     "Toggle favorite",
		Description: "Favorites the work if not favorited, unfavorites it otherwise",
		Tags:        []string{"Favorites"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleToggleFavorite)

	huma.Register(s.api, huma.Operation{
		OperationID: "getFavoriteStatus",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites/status",
		Summary:     "Get favorite status",
		Description: "Reports whether the current user has favorited the work. Anonymous visitors always get false.",
		Tags:        []string{"Favorites"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleGetFavoriteStatus)
}

// === DTOs ===

// FavoritedWorkResponse is a work annotated with its favorite entry.
type FavoritedWorkResponse struct {
	WorkResponse
	FavoriteID string `json:"favorite_id" doc:"Favorite entry ID"`
}

// ListFavoritesInput contains parameters for listing favorites.
type ListFavoritesInput struct {
	Authorization string `header:"Authorization"`
}

// ListFavoritesResponse contains the user's favorited works.
type ListFavoritesResponse struct {
	Favorites []FavoritedWorkResponse `json:"favorites" doc:"Favorited works"`
}

// ListFavoritesOutput wraps the list favorites response for Huma.
type ListFavoritesOutput struct {
	Body ListFavoritesResponse
}

// ToggleFavoriteRequest is the request body for toggling a favorite.
type ToggleFavoriteRequest struct {
	WorkID string `json:"work_id" validate:"required,max=100" doc:"Work ID to toggle"`
}

// ToggleFavoriteInput wraps the toggle request for Huma.
type ToggleFavoriteInput struct {
	Authorization string `header:"Authorization"`
	Body          ToggleFavoriteRequest
}

// ToggleFavoriteResponse reports the new favorite state.
type ToggleFavoriteResponse struct {
	Added bool `json:"added" doc:"True when the work is now favorited"`
}

// ToggleFavoriteOutput wraps the toggle response for Huma.
type ToggleFavoriteOutput struct {
	Body ToggleFavoriteResponse
}

// FavoriteStatusInput contains parameters for the status check.
type FavoriteStatusInput struct {
	Authorization string `header:"Authorization"`
	WorkID        string `query:"work_id" required:"true" doc:"Work ID to check"`
}

// FavoriteStatusResponse reports whether a work is favorited.
type FavoriteStatusResponse struct {
	Favorited bool `json:"favorited" doc:"True when the current user has favorited the work"`
}

// FavoriteStatusOutput wraps the status response for Huma.
type FavoriteStatusOutput struct {
	Body FavoriteStatusResponse
}

// === Handlers ===

func (s *Server) handleListFavorites(ctx context.Context, input *ListFavoritesInput) (*ListFavoritesOutput, error) {
	// Anonymous visitors see an empty list, not an error.
	userID := s.optionalUserID(ctx, input.Authorization)
	if userID == "" {
		return &ListFavoritesOutput{Body: ListFavoritesResponse{Favorites: []FavoritedWorkResponse{}}}, nil
	}

	favorites, err := s.services.Favorites.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ListFavoritesOutput{Body: ListFavoritesResponse{Favorites: mapFavoritedWorks(favorites)}}, nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, input *ToggleFavoriteInput) (*ToggleFavoriteOutput, error) {
	userID, err := s.authenticateRequest(ctx, input.Authorization)
	if err != nil {
		return nil, err
	}

	added, err := s.services.Favorites.Toggle(ctx, userID, input.Body.WorkID)
	if err != nil {
		return nil, err
	}

	return &ToggleFavoriteOutput{Body: ToggleFavoriteResponse{Added: added}}, nil
}

func (s *Server) handleGetFavoriteStatus(ctx context.Context, input *FavoriteStatusInput) (*FavoriteStatusOutput, error) {
	// Anonymous visitors get false, not an error.
	userID := s.optionalUserID(ctx, input.Authorization)
	if userID == "" {
		return &FavoriteStatusOutput{Body: FavoriteStatusResponse{Favorited: false}}, nil
	}

	favorited, err := s.services.Favorites.IsFavorited(ctx, userID, input.WorkID)
	if err != nil {
		return nil, err
	}

	return &FavoriteStatusOutput{Body: FavoriteStatusResponse{Favorited: favorited}}, nil
}

// === Helpers ===

func mapFavoritedWorks(favorites []*domain.FavoritedWork) []FavoritedWorkResponse {
	resp := make([]FavoritedWorkResponse, len(favorites))
	for i, favorite := range favorites {
		resp[i] = FavoritedWorkResponse{
			WorkResponse: mapWork(&favorite.Work),
			FavoriteID:   favorite.FavoriteID,
		}
	}
	return resp
}
