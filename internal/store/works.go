package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/memorialapp/memorial-server/internal/domain"
)

// Work storage key prefixes.
const (
	workPrefix            = "work:"
	workIdxCategoryPrefix = "work:idx:category:"
)

// CreateWork stores a work and its category index in a single transaction.
// Works are insert-only; there is no update path.
func (s *Store) CreateWork(ctx context.Context, work *domain.Work) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(work)
	if err != nil {
		return fmt.Errorf("marshaling work: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return setWorkInTxn(txn, work.ID, work.Category, data)
	})
}

// setWorkInTxn writes a work's primary key and category index inside a transaction.
func setWorkInTxn(txn *badger.Txn, id, category string, data []byte) error {
	primaryKey := []byte(workPrefix + id)
	if err := txn.Set(primaryKey, data); err != nil {
		return fmt.Errorf("setting primary key: %w", err)
	}

	// Category index: work:idx:category:{category}:{id} → "" (key-only)
	categoryKey := []byte(workIdxCategoryPrefix + category + ":" + id)
	if err := txn.Set(categoryKey, []byte{}); err != nil {
		return fmt.Errorf("setting category index: %w", err)
	}

	return nil
}

// GetWork retrieves a single work by ID.
func (s *Store) GetWork(ctx context.Context, id string) (*domain.Work, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var work domain.Work
	err := s.get([]byte(workPrefix+id), &work)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, fmt.Errorf("work %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("getting work %s: %w", id, err)
	}

	return &work, nil
}

// HasWorks reports whether the catalog contains at least one work.
func (s *Store) HasWorks(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var found bool
	err := s.db.View(func(txn *badger.Txn) error {
		found = hasWorksInTxn(txn)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("probing works: %w", err)
	}

	return found, nil
}

// hasWorksInTxn scans for the first non-index work key inside a transaction.
func hasWorksInTxn(txn *badger.Txn) bool {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	opts.Prefix = []byte(workPrefix)

	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek([]byte(workPrefix)); it.ValidForPrefix([]byte(workPrefix)); it.Next() {
		key := string(it.Item().Key())
		if strings.HasPrefix(key[len(workPrefix):], "idx:") {
			continue
		}
		return true
	}
	return false
}

// SeedWorks inserts the given works only if the catalog is currently empty.
// The emptiness probe and the inserts run in a single transaction, so
// concurrent seed calls cannot duplicate the catalog.
// Returns true if the works were inserted.
func (s *Store) SeedWorks(ctx context.Context, works []*domain.Work) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var seeded bool
	err := s.db.Update(func(txn *badger.Txn) error {
		if hasWorksInTxn(txn) {
			return nil
		}

		for _, work := range works {
			data, err := json.Marshal(work)
			if err != nil {
				return fmt.Errorf("marshaling work %s: %w", work.ID, err)
			}
			if err := setWorkInTxn(txn, work.ID, work.Category, data); err != nil {
				return err
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seeding works: %w", err)
	}

	return seeded, nil
}

// ListWorks returns all works, optionally filtered by exact category.
// An empty category returns the full catalog.
func (s *Store) ListWorks(ctx context.Context, category string) ([]*domain.Work, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if category == "" {
		return s.listAllWorks(ctx)
	}

	var works []*domain.Work
	indexPrefix := []byte(workIdxCategoryPrefix + category + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false // Key-only index, no values to fetch
		opts.Prefix = indexPrefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(indexPrefix); it.ValidForPrefix(indexPrefix); it.Next() {
			key := string(it.Item().Key())
			workID := key[len(indexPrefix):]
			if workID == "" {
				continue
			}

			work, err := s.getWorkInTxn(txn, workID)
			if err != nil {
				continue
			}
			works = append(works, work)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing works by category: %w", err)
	}

	return works, nil
}

// listAllWorks scans the full work keyspace, skipping index keys.
func (s *Store) listAllWorks(ctx context.Context) ([]*domain.Work, error) {
	var works []*domain.Work

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(workPrefix)
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(workPrefix)); it.ValidForPrefix([]byte(workPrefix)); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}

			key := string(it.Item().Key())
			if strings.HasPrefix(key[len(workPrefix):], "idx:") {
				continue
			}

			var work domain.Work
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &work)
			})
			if err != nil {
				return fmt.Errorf("unmarshaling work %s: %w", key, err)
			}

			works = append(works, &work)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing works: %w", err)
	}

	return works, nil
}

// ListCategories returns the distinct categories present in the catalog, sorted.
func (s *Store) ListCategories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(workIdxCategoryPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(workIdxCategoryPrefix)); it.ValidForPrefix([]byte(workIdxCategoryPrefix)); it.Next() {
			key := string(it.Item().Key())
			remainder := key[len(workIdxCategoryPrefix):]

			// Key format: work:idx:category:{category}:{id}. The work ID is a
			// nanoid with no colons, so the last segment is always the ID.
			sep := strings.LastIndex(remainder, ":")
			if sep <= 0 {
				continue
			}
			seen[remainder[:sep]] = true
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	return categories, nil
}

// getWorkInTxn retrieves a work within an existing transaction.
func (s *Store) getWorkInTxn(txn *badger.Txn, id string) (*domain.Work, error) {
	item, err := txn.Get([]byte(workPrefix + id))
	if err != nil {
		return nil, err
	}

	var work domain.Work
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &work)
	})
	if err != nil {
		return nil, err
	}

	return &work, nil
}
