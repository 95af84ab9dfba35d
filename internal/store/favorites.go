package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/memorialapp/memorial-server/internal/domain"
)

// Favorite storage key prefix.
// The primary key is composite: favorite:{userID}:{workID}. This makes the
// (user, work) pair unique by construction and lets the toggle run as one
// check-and-act transaction.
const favoritePrefix = "favorite:"

// favoriteKey builds the composite primary key for a (user, work) pair.
// User and work IDs are nanoids with no colons, so the key parses unambiguously.
func favoriteKey(userID, workID string) []byte {
	return []byte(favoritePrefix + userID + ":" + workID)
}

// ToggleFavorite flips the favorite state for a (user, work) pair in a single
// transaction. Returns true if the favorite was added, false if removed.
func (s *Store) ToggleFavorite(ctx context.Context, favorite *domain.Favorite) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	key := favoriteKey(favorite.UserID, favorite.WorkID)

	var added bool
	err := s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if err == nil {
			// Already favorited: remove it.
			added = false
			return txn.Delete(key)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("checking favorite: %w", err)
		}

		data, err := json.Marshal(favorite)
		if err != nil {
			return fmt.Errorf("marshaling favorite: %w", err)
		}

		added = true
		return txn.Set(key, data)
	})
	if err != nil {
		return false, fmt.Errorf("toggling favorite: %w", err)
	}

	return added, nil
}

// IsFavorited reports whether the user has favorited the work.
func (s *Store) IsFavorited(ctx context.Context, userID, workID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	found, err := s.exists(favoriteKey(userID, workID))
	if err != nil {
		return false, fmt.Errorf("checking favorite: %w", err)
	}
	return found, nil
}

// ListFavorites returns all favorites belonging to a user.
func (s *Store) ListFavorites(ctx context.Context, userID string) ([]*domain.Favorite, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var favorites []*domain.Favorite
	prefix := []byte(favoritePrefix + userID + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			var favorite domain.Favorite
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &favorite)
			})
			if err != nil {
				return fmt.Errorf("unmarshaling favorite: %w", err)
			}

			favorites = append(favorites, &favorite)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	return favorites, nil
}
