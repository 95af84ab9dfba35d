package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/memorialapp/memorial-server/internal/domain"
	domainerrors "github.com/memorialapp/memorial-server/internal/errors"
	"github.com/memorialapp/memorial-server/internal/id"
	"github.com/memorialapp/memorial-server/internal/store"
)

// TributesService manages the public tribute wall.
type TributesService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewTributesService creates a new tributes service.
func NewTributesService(s *store.Store, logger *slog.Logger) *TributesService {
	return &TributesService{
		store:  s,
		logger: logger,
	}
}

// List returns the most recent tributes, newest first.
func (s *TributesService) List(ctx context.Context) ([]*domain.Tribute, error) {
	tributes, err := s.store.ListTributes(ctx, domain.MaxTributesReturned)
	if err != nil {
		return nil, fmt.Errorf("list tributes: %w", err)
	}
	if tributes == nil {
		tributes = []*domain.Tribute{}
	}
	return tributes, nil
}

// Create posts a new tribute for the user.
// Message and author name must be non-empty after trimming.
func (s *TributesService) Create(ctx context.Context, userID, message, authorName string) (*domain.Tribute, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	message = strings.TrimSpace(message)
	authorName = strings.TrimSpace(authorName)

	if message == "" {
		return nil, domainerrors.Validation("tribute message cannot be empty")
	}
	if authorName == "" {
		return nil, domainerrors.Validation("author name cannot be empty")
	}

	tributeID, err := id.Generate("tribute")
	if err != nil {
		return nil, fmt.Errorf("generate tribute ID: %w", err)
	}

	tribute := &domain.Tribute{
		ID:         tributeID,
		UserID:     userID,
		AuthorName: authorName,
		Message:    message,
		CreatedAt:  time.Now(),
	}

	if err := s.store.CreateTribute(ctx, tribute); err != nil {
		return nil, fmt.Errorf("create tribute: %w", err)
	}

	s.logger.Info("tribute created",
		"tribute_id", tributeID,
		"user_id", userID,
	)

	return tribute, nil
}

// Delete removes a tribute.
// Requires ownership: only the author may delete their tribute.
func (s *TributesService) Delete(ctx context.Context, userID, tributeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tribute, err := s.store.GetTribute(ctx, tributeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domainerrors.NotFoundf("tribute %s not found", tributeID)
		}
		return fmt.Errorf("get tribute: %w", err)
	}

	if !tribute.IsOwnedBy(userID) {
		return domainerrors.Forbidden("you can only delete your own tributes")
	}

	if err := s.store.DeleteTribute(ctx, tributeID); err != nil {
		return fmt.Errorf("delete tribute: %w", err)
	}

	s.logger.Info("tribute deleted",
		"tribute_id", tributeID,
		"user_id", userID,
	)

	return nil
}
