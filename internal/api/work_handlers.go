package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/memorialapp/memorial-server/internal/domain"
)

func (s *Server) registerWorkRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listWorks",
		Method:      http.MethodGet,
		Path:        "/api/v1/works",
		Summary:     "List works",
		Description: "Returns catalog works, optionally filtered by exact category",
		Tags:        []string{"Works"},
	}, s.handleListWorks)

	huma.Register(s.api, huma.Operation{
		OperationID: "listWorkCategories",
		Method:      http.MethodGet,
		Path:        "/api/v1/works/categories",
		Summary:     "List categories",
		Description: "Returns the distinct categories present in the catalog",
		Tags:        []string{"Works"},
	}, s.handleListWorkCategories)

	huma.Register(s.api, huma.Operation{
		OperationID: "getWork",
		Method:      http.MethodGet,
		Path:        "/api/v1/works/{id}",
		Summary:     "Get work",
		Description: "Returns a single work by ID",
		Tags:        []string{"Works"},
	}, s.handleGetWork)

	huma.Register(s.api, huma.Operation{
		OperationID: "addWork",
		Method:      http.MethodPost,
		Path:        "/api/v1/works",
		Summary:     "Add work",
		Description: "Adds a work to the catalog. Entries are not deduplicated.",
		Tags:        []string{"Works"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, s.handleAddWork)

	huma.Register(s.api, huma.Operation{
		OperationID: "seedWorks",
		Method:      http.MethodPost,
		Path:        "/api/v1/works/seed",
		Summary:     "Seed catalog",
		Description: "Inserts the built-in catalog when no works exist yet",
		Tags:        []string{"Works"},
	}, s.handleSeedWorks)

	huma.Register(s.api, huma.Operation{
		OperationID: "refreshWorks",
		Method:      http.MethodPost,
		Path:        "/api/v1/works/refresh",
		Summary:     "Refresh catalog",
		Description: "Ingests works from the Firecrawl search API, falling back to the built-in catalog when the fetch cannot complete",
		Tags:        []string{"Works"},
	}, s.handleRefreshWorks)
}

// === DTOs ===

// WorkResponse contains work data in API responses.
type WorkResponse struct {
	ID          string    `json:"id" doc:"Work ID"`
	Title       string    `json:"title" doc:"Work title"`
	Description string    `json:"description" doc:"Work description"`
	Source      string    `json:"source" doc:"Where the work came from"`
	Category    string    `json:"category" doc:"Category: book, sermon, ministry, or teaching"`
	URL         string    `json:"url,omitempty" doc:"External link"`
	FetchedAt   time.Time `json:"fetched_at" doc:"When the work was stored"`
}

// ListWorksInput contains parameters for listing works.
type ListWorksInput struct {
	Category string `query:"category" doc:"Exact category filter"`
}

// ListWorksResponse contains a list of works.
type ListWorksResponse struct {
	Works []WorkResponse `json:"works" doc:"Catalog works"`
}

// ListWorksOutput wraps the list works response for Huma.
type ListWorksOutput struct {
	Body ListWorksResponse
}

// CategoriesResponse contains the distinct catalog categories.
type CategoriesResponse struct {
	Categories []string `json:"categories" doc:"Distinct categories, sorted"`
}

// CategoriesOutput wraps the categories response for Huma.
type CategoriesOutput struct {
	Body CategoriesResponse
}

// GetWorkInput contains parameters for getting a work.
type GetWorkInput struct {
	ID string `path:"id" doc:"Work ID"`
}

// WorkOutput wraps the work response for Huma.
type WorkOutput struct {
	Body WorkResponse
}

// AddWorkRequest is the request body for adding a work.
type AddWorkRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=500" doc:"Work title"`
	Description string `json:"description,omitempty" validate:"omitempty,max=5000" doc:"Work description"`
	Source      string `json:"source,omitempty" validate:"omitempty,max=200" doc:"Where the work came from"`
	Category    string `json:"category" validate:"required,oneof=book sermon ministry teaching" doc:"Work category"`
	URL         string `json:"url,omitempty" validate:"omitempty,url,max=2000" doc:"External link"`
}

// AddWorkInput wraps the add work request for Huma.
type AddWorkInput struct {
	Authorization string `header:"Authorization"`
	Body          AddWorkRequest
}

// RefreshWorksResponse reports the outcome of a catalog refresh.
type RefreshWorksResponse struct {
	Success  bool   `json:"success" doc:"Whether the catalog is populated"`
	Message  string `json:"message" doc:"Human-readable outcome"`
	Outcome  string `json:"outcome" doc:"Either ingested or seeded"`
	Reason   string `json:"reason,omitempty" doc:"Why the fetch was skipped, when seeded"`
	Ingested int    `json:"ingested" doc:"Number of external results stored"`
}

// RefreshWorksOutput wraps the refresh response for Huma.
type RefreshWorksOutput struct {
	Body RefreshWorksResponse
}

// SeedWorksResponse reports whether the built-in catalog was inserted.
type SeedWorksResponse struct {
	Seeded  bool   `json:"seeded" doc:"Whether any works were inserted"`
	Message string `json:"message" doc:"Status message"`
}

// SeedWorksOutput wraps the seed response for Huma.
type SeedWorksOutput struct {
	Body SeedWorksResponse
}

// === Handlers ===

func (s *Server) handleListWorks(ctx context.Context, input *ListWorksInput) (*ListWorksOutput, error) {
	works, err := s.services.Works.List(ctx, input.Category)
	if err != nil {
		return nil, err
	}

	return &ListWorksOutput{Body: ListWorksResponse{Works: mapWorks(works)}}, nil
}

func (s *Server) handleListWorkCategories(ctx context.Context, _ *struct{}) (*CategoriesOutput, error) {
	categories, err := s.services.Works.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	return &CategoriesOutput{Body: CategoriesResponse{Categories: categories}}, nil
}

func (s *Server) handleGetWork(ctx context.Context, input *GetWorkInput) (*WorkOutput, error) {
	work, err := s.services.Works.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &WorkOutput{Body: mapWork(work)}, nil
}

func (s *Server) handleAddWork(ctx context.Context, input *AddWorkInput) (*WorkOutput, error) {
	if _, err := s.authenticateRequest(ctx, input.Authorization); err != nil {
		return nil, err
	}

	work, err := s.services.Works.Add(ctx,
		input.Body.Title,
		input.Body.Description,
		input.Body.Source,
		input.Body.Category,
		input.Body.URL,
	)
	if err != nil {
		return nil, err
	}

	return &WorkOutput{Body: mapWork(work)}, nil
}

func (s *Server) handleSeedWorks(ctx context.Context, _ *struct{}) (*SeedWorksOutput, error) {
	seeded, err := s.services.Works.SeedIfEmpty(ctx)
	if err != nil {
		return nil, err
	}

	message := "Catalog already contains works"
	if seeded {
		message = "Seeded with initial works"
	}

	return &SeedWorksOutput{Body: SeedWorksResponse{Seeded: seeded, Message: message}}, nil
}

func (s *Server) handleRefreshWorks(ctx context.Context, _ *struct{}) (*RefreshWorksOutput, error) {
	result, err := s.services.Works.RefreshFromFirecrawl(ctx)
	if err != nil {
		return nil, err
	}

	return &RefreshWorksOutput{
		Body: RefreshWorksResponse{
			Success:  true,
			Message:  result.Message,
			Outcome:  string(result.Outcome),
			Reason:   result.Reason,
			Ingested: result.Ingested,
		},
	}, nil
}

// === Helpers ===

func mapWork(work *domain.Work) WorkResponse {
	return WorkResponse{
		ID:          work.ID,
		Title:       work.Title,
		Description: work.Description,
		Source:      work.Source,
		Category:    work.Category,
		URL:         work.URL,
		FetchedAt:   work.FetchedAt,
	}
}

func mapWorks(works []*domain.Work) []WorkResponse {
	resp := make([]WorkResponse, len(works))
	for i, work := range works {
		resp[i] = mapWork(work)
	}
	return resp
}
