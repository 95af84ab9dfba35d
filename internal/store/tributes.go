package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/memorialapp/memorial-server/internal/domain"
)

// Tribute storage key prefixes.
// The created index uses inverted timestamps so forward iteration yields
// newest tributes first.
const (
	tributePrefix           = "tribute:"
	tributeIdxCreatedPrefix = "tribute:idx:created:"
)

// CreateTribute stores a tribute and its feed index in a single transaction.
func (s *Store) CreateTribute(ctx context.Context, tribute *domain.Tribute) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(tribute)
	if err != nil {
		return fmt.Errorf("marshaling tribute: %w", err)
	}

	invertedTS := invertedTimestamp(tribute.CreatedAt)

	return s.db.Update(func(txn *badger.Txn) error {
		// Primary key: tribute:{id} → Tribute JSON
		primaryKey := []byte(tributePrefix + tribute.ID)
		if err := txn.Set(primaryKey, data); err != nil {
			return fmt.Errorf("setting primary key: %w", err)
		}

		// Feed index: tribute:idx:created:{inverted_timestamp}:{id} → "" (key-only)
		feedKey := []byte(tributeIdxCreatedPrefix + invertedTS + ":" + tribute.ID)
		if err := txn.Set(feedKey, []byte{}); err != nil {
			return fmt.Errorf("setting feed index: %w", err)
		}

		return nil
	})
}

// GetTribute retrieves a single tribute by ID.
func (s *Store) GetTribute(ctx context.Context, id string) (*domain.Tribute, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var tribute domain.Tribute
	err := s.get([]byte(tributePrefix+id), &tribute)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("tribute %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting tribute %s: %w", id, err)
	}

	return &tribute, nil
}

// DeleteTribute removes a tribute and its feed index in a single transaction.
// Returns ErrNotFound if the tribute does not exist.
func (s *Store) DeleteTribute(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		primaryKey := []byte(tributePrefix + id)

		item, err := txn.Get(primaryKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("tribute %s: %w", id, ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("getting tribute: %w", err)
		}

		var tribute domain.Tribute
		err = item.Value(func(val []byte) error {
			return json.Unmarshal(val, &tribute)
		})
		if err != nil {
			return fmt.Errorf("unmarshaling tribute: %w", err)
		}

		feedKey := []byte(tributeIdxCreatedPrefix + invertedTimestamp(tribute.CreatedAt) + ":" + id)
		if err := txn.Delete(feedKey); err != nil {
			return fmt.Errorf("deleting feed index: %w", err)
		}

		if err := txn.Delete(primaryKey); err != nil {
			return fmt.Errorf("deleting primary key: %w", err)
		}

		return nil
	})
}

// ListTributes returns up to limit tributes sorted by CreatedAt descending.
func (s *Store) ListTributes(ctx context.Context, limit int) ([]*domain.Tribute, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var tributes []*domain.Tribute

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // Key-only index, no values to fetch
		opts.Prefix = []byte(tributeIdxCreatedPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(tributeIdxCreatedPrefix)); it.ValidForPrefix([]byte(tributeIdxCreatedPrefix)); it.Next() {
			if len(tributes) >= limit {
				break
			}

			// Key format: tribute:idx:created:{inverted_ts}:{id}
			key := string(it.Item().Key())
			tributeID := extractIDFromFeedKey(key, tributeIdxCreatedPrefix)
			if tributeID == "" {
				continue
			}

			item, err := txn.Get([]byte(tributePrefix + tributeID))
			if err != nil {
				continue
			}

			var tribute domain.Tribute
			err = item.Value(func(val []byte) error {
				return json.Unmarshal(val, &tribute)
			})
			if err != nil {
				continue
			}

			tributes = append(tributes, &tribute)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing tributes: %w", err)
	}

	return tributes, nil
}

// extractIDFromFeedKey extracts the entity ID from a feed index key.
// Key format: {prefix}{inverted_ts}:{id}.
func extractIDFromFeedKey(key, prefix string) string {
	if len(key) <= len(prefix)+invertedTimestampLen+1 { // timestamp + colon
		return ""
	}
	return key[len(prefix)+invertedTimestampLen+1:]
}
