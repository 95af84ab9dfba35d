package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/memorialapp/memorial-server/internal/domain"
	domainerrors "github.com/memorialapp/memorial-server/internal/errors"
	"github.com/memorialapp/memorial-server/internal/firecrawl"
	"github.com/memorialapp/memorial-server/internal/id"
	"github.com/memorialapp/memorial-server/internal/store"
)

// Searcher is the slice of the Firecrawl client the works service needs.
// Narrowed to an interface so tests can substitute a fake.
type Searcher interface {
	HasAPIKey() bool
	Search(ctx context.Context, query string, limit int) ([]firecrawl.SearchResult, error)
}

// RefreshOutcome tags which path a catalog refresh took.
type RefreshOutcome string

const (
	// OutcomeSeeded means the external fetch was skipped or failed and the
	// built-in catalog was seeded instead.
	OutcomeSeeded RefreshOutcome = "seeded"
	// OutcomeIngested means external results were stored.
	OutcomeIngested RefreshOutcome = "ingested"
)

// Refresh fallback reasons.
const (
	ReasonNoAPIKey   = "no_api_key"
	ReasonAPIError   = "api_error"
	ReasonFetchError = "fetch_error"
)

// RefreshResult describes the outcome of a catalog refresh. The refresh
// always succeeds; the catalog is never left empty by a failed fetch.
type RefreshResult struct {
	Outcome  RefreshOutcome
	Reason   string // set when Outcome is OutcomeSeeded
	Ingested int    // number of external results stored
	Message  string
}

// WorksService manages the memorial catalog: listing, manual additions,
// seeding, and external ingest via Firecrawl.
type WorksService struct {
	store    *store.Store
	searcher Searcher
	logger   *slog.Logger

	// Query and result limit for external ingest.
	searchQuery string
	searchLimit int
}

// NewWorksService creates a new works service.
func NewWorksService(s *store.Store, searcher Searcher, searchQuery string, searchLimit int, logger *slog.Logger) *WorksService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &WorksService{
		store:       s,
		searcher:    searcher,
		logger:      logger,
		searchQuery: searchQuery,
		searchLimit: searchLimit,
	}
}

// List returns works, filtered by exact category when one is given.
func (s *WorksService) List(ctx context.Context, category string) ([]*domain.Work, error) {
	works, err := s.store.ListWorks(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	if works == nil {
		works = []*domain.Work{}
	}
	return works, nil
}

// ListCategories returns the distinct categories present in the catalog.
func (s *WorksService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// Get retrieves a single work by ID.
func (s *WorksService) Get(ctx context.Context, workID string) (*domain.Work, error) {
	work, err := s.store.GetWork(ctx, workID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.NotFoundf("work %s not found", workID)
		}
		return nil, fmt.Errorf("get work: %w", err)
	}
	return work, nil
}

// Add inserts a new work into the catalog. There is no deduplication; two
// adds with the same title create two entries.
func (s *WorksService) Add(ctx context.Context, title, description, source, category, url string) (*domain.Work, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if title == "" {
		return nil, domainerrors.Validation("work title cannot be empty")
	}
	if category == "" {
		return nil, domainerrors.Validation("work category cannot be empty")
	}

	workID, err := id.Generate("work")
	if err != nil {
		return nil, fmt.Errorf("generate work ID: %w", err)
	}

	work := &domain.Work{
		ID:          workID,
		Title:       title,
		Description: description,
		Source:      source,
		Category:    category,
		URL:         url,
		FetchedAt:   time.Now(),
	}

	if err := s.store.CreateWork(ctx, work); err != nil {
		return nil, fmt.Errorf("create work: %w", err)
	}

	s.logger.Info("work added",
		"work_id", workID,
		"title", title,
		"category", category,
	)

	return work, nil
}

// SeedIfEmpty inserts the built-in catalog when no works exist yet.
// Safe to call repeatedly: the probe and the inserts share a transaction,
// so the catalog is seeded at most once.
func (s *WorksService) SeedIfEmpty(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	now := time.Now()
	works := make([]*domain.Work, 0, len(initialWorks))
	for _, seed := range initialWorks {
		workID, err := id.Generate("work")
		if err != nil {
			return false, fmt.Errorf("generate work ID: %w", err)
		}
		works = append(works, seed.toDomain(workID, now))
	}

	seeded, err := s.store.SeedWorks(ctx, works)
	if err != nil {
		return false, fmt.Errorf("seed works: %w", err)
	}

	if seeded {
		s.logger.Info("seeded initial catalog", "count", len(works))
	}

	return seeded, nil
}

// RefreshFromFirecrawl ingests works from the Firecrawl search API with a
// layered fallback: no API key, a non-2xx response, or a transport error all
// fall back to seeding the built-in catalog. The refresh itself never fails
// for external reasons - the visitor always ends up with a populated catalog.
func (s *WorksService) RefreshFromFirecrawl(ctx context.Context) (*RefreshResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !s.searcher.HasAPIKey() {
		if _, err := s.SeedIfEmpty(ctx); err != nil {
			return nil, err
		}
		return &RefreshResult{
			Outcome: OutcomeSeeded,
			Reason:  ReasonNoAPIKey,
			Message: "Seeded with initial works (no Firecrawl API key)",
		}, nil
	}

	results, err := s.searcher.Search(ctx, s.searchQuery, s.searchLimit)
	if err != nil {
		var apiErr *firecrawl.APIError
		if errors.As(err, &apiErr) {
			s.logger.Warn("Firecrawl API error, falling back to seed catalog",
				"status", apiErr.StatusCode,
			)
			if _, seedErr := s.SeedIfEmpty(ctx); seedErr != nil {
				return nil, seedErr
			}
			return &RefreshResult{
				Outcome: OutcomeSeeded,
				Reason:  ReasonAPIError,
				Message: "Seeded with initial works (Firecrawl API error)",
			}, nil
		}

		s.logger.Warn("Firecrawl fetch failed, falling back to seed catalog",
			"error", err,
		)
		if _, seedErr := s.SeedIfEmpty(ctx); seedErr != nil {
			return nil, seedErr
		}
		return &RefreshResult{
			Outcome: OutcomeSeeded,
			Reason:  ReasonFetchError,
			Message: "Seeded with initial works (fetch error)",
		}, nil
	}

	ingested := 0
	for _, result := range results {
		title := result.Title
		if title == "" {
			title = "Untitled"
		}
		description := result.Description
		if description == "" {
			description = result.Snippet
		}
		source := result.Source
		if source == "" {
			source = "Firecrawl"
		}

		// Each result commits independently; a mid-ingest failure can only
		// yield fewer works, never a corrupt catalog.
		_, err := s.Add(ctx, title, description, source, string(domain.CategorizeTitle(result.Title)), result.URL)
		if err != nil {
			s.logger.Warn("failed to store ingested work",
				"title", title,
				"error", err,
			)
			continue
		}
		ingested++
	}

	// The curated catalog backs up the ingested results regardless.
	if _, err := s.SeedIfEmpty(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("catalog refreshed from Firecrawl", "ingested", ingested)

	return &RefreshResult{
		Outcome:  OutcomeIngested,
		Ingested: ingested,
		Message:  "Works fetched successfully",
	}, nil
}
