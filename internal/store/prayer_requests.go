package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/memorialapp/memorial-server/internal/domain"
)

// Prayer request storage key prefixes.
const (
	prayerPrefix           = "prayer:"
	prayerIdxCreatedPrefix = "prayer:idx:created:"
)

// CreatePrayerRequest stores a prayer request and its feed index in a single
// transaction. The stored record always carries the author; anonymity is a
// read-time projection.
func (s *Store) CreatePrayerRequest(ctx context.Context, request *domain.PrayerRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshaling prayer request: %w", err)
	}

	invertedTS := invertedTimestamp(request.CreatedAt)

	return s.db.Update(func(txn *badger.Txn) error {
		primaryKey := []byte(prayerPrefix + request.ID)
		if err := txn.Set(primaryKey, data); err != nil {
			return fmt.Errorf("setting primary key: %w", err)
		}

		feedKey := []byte(prayerIdxCreatedPrefix + invertedTS + ":" + request.ID)
		if err := txn.Set(feedKey, []byte{}); err != nil {
			return fmt.Errorf("setting feed index: %w", err)
		}

		return nil
	})
}

// GetPrayerRequest retrieves a single prayer request by ID.
func (s *Store) GetPrayerRequest(ctx context.Context, id string) (*domain.PrayerRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var request domain.PrayerRequest
	err := s.get([]byte(prayerPrefix+id), &request)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("prayer request %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting prayer request %s: %w", id, err)
	}

	return &request, nil
}

// ListPrayerRequests returns up to limit prayer requests sorted by CreatedAt
// descending.
func (s *Store) ListPrayerRequests(ctx context.Context, limit int) ([]*domain.PrayerRequest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var requests []*domain.PrayerRequest

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prayerIdxCreatedPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(prayerIdxCreatedPrefix)); it.ValidForPrefix([]byte(prayerIdxCreatedPrefix)); it.Next() {
			if len(requests) >= limit {
				break
			}

			key := string(it.Item().Key())
			requestID := extractIDFromFeedKey(key, prayerIdxCreatedPrefix)
			if requestID == "" {
				continue
			}

			item, err := txn.Get([]byte(prayerPrefix + requestID))
			if err != nil {
				continue
			}

			var request domain.PrayerRequest
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &request)
			})
			if err != nil {
				continue
			}

			requests = append(requests, &request)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing prayer requests: %w", err)
	}

	return requests, nil
}
