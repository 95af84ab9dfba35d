package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/memorialapp/memorial-server/internal/domain"
	"github.com/memorialapp/memorial-server/internal/id"
	"github.com/memorialapp/memorial-server/internal/store"
)

// FavoritesService manages per-user work favorites.
type FavoritesService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewFavoritesService creates a new favorites service.
func NewFavoritesService(s *store.Store, logger *slog.Logger) *FavoritesService {
	return &FavoritesService{
		store:  s,
		logger: logger,
	}
}

// List returns the user's favorited works joined with their catalog entries.
// Favorites pointing at works that no longer resolve are dropped silently.
func (s *FavoritesService) List(ctx context.Context, userID string) ([]*domain.FavoritedWork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	favorites, err := s.store.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	works := make([]*domain.FavoritedWork, 0, len(favorites))
	for _, favorite := range favorites {
		work, err := s.store.GetWork(ctx, favorite.WorkID)
		if err != nil {
			// Dangling favorite: the work is gone, skip the entry.
			continue
		}
		works = append(works, &domain.FavoritedWork{
			Work:       *work,
			FavoriteID: favorite.ID,
		})
	}

	return works, nil
}

// Toggle flips the favorite state for the given work.
// Returns true if the work is now favorited, false if unfavorited.
// The check-and-act runs inside one store transaction, so concurrent toggles
// of the same pair serialize cleanly.
func (s *FavoritesService) Toggle(ctx context.Context, userID, workID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	favoriteID, err := id.Generate("fav")
	if err != nil {
		return false, fmt.Errorf("generate favorite ID: %w", err)
	}

	favorite := &domain.Favorite{
		ID:        favoriteID,
		UserID:    userID,
		WorkID:    workID,
		CreatedAt: time.Now(),
	}

	added, err := s.store.ToggleFavorite(ctx, favorite)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}

	s.logger.Info("favorite toggled",
		"user_id", userID,
		"work_id", workID,
		"added", added,
	)

	return added, nil
}

// IsFavorited reports whether the user has favorited the work.
func (s *FavoritesService) IsFavorited(ctx context.Context, userID, workID string) (bool, error) {
	favorited, err := s.store.IsFavorited(ctx, userID, workID)
	if err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return favorited, nil
}
