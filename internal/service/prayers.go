package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/memorialapp/memorial-server/internal/domain"
	domainerrors "github.com/memorialapp/memorial-server/internal/errors"
	"github.com/memorialapp/memorial-server/internal/id"
	"github.com/memorialapp/memorial-server/internal/store"
)

// PrayersService manages the prayer request ledger.
type PrayersService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewPrayersService creates a new prayers service.
func NewPrayersService(s *store.Store, logger *slog.Logger) *PrayersService {
	return &PrayersService{
		store:  s,
		logger: logger,
	}
}

// List returns the most recent prayer requests, newest first, with the
// anonymity projection applied: anonymous requests carry no author.
func (s *PrayersService) List(ctx context.Context) ([]domain.PrayerRequestView, error) {
	requests, err := s.store.ListPrayerRequests(ctx, domain.MaxPrayerRequestsReturned)
	if err != nil {
		return nil, fmt.Errorf("list prayer requests: %w", err)
	}

	views := make([]domain.PrayerRequestView, 0, len(requests))
	for _, request := range requests {
		views = append(views, request.View())
	}

	return views, nil
}

// Create submits a new prayer request for the user.
// The author is always recorded; isAnonymous only affects how the request
// is presented to readers.
func (s *PrayersService) Create(ctx context.Context, userID, request string, isAnonymous bool) (*domain.PrayerRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	request = strings.TrimSpace(request)
	if request == "" {
		return nil, domainerrors.Validation("prayer request cannot be empty")
	}

	prayerID, err := id.Generate("prayer")
	if err != nil {
		return nil, fmt.Errorf("generate prayer request ID: %w", err)
	}

	prayerRequest := &domain.PrayerRequest{
		ID:          prayerID,
		UserID:      userID,
		Request:     request,
		IsAnonymous: isAnonymous,
		CreatedAt:   time.Now(),
	}

	if err := s.store.CreatePrayerRequest(ctx, prayerRequest); err != nil {
		return nil, fmt.Errorf("create prayer request: %w", err)
	}

	s.logger.Info("prayer request created",
		"prayer_id", prayerID,
		"anonymous", isAnonymous,
	)

	return prayerRequest, nil
}
