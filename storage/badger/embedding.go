// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/reviewlens/core"
	"github.com/poiesic/reviewlens/storage"
)

// EmbeddingIndex implements storage.EmbeddingIndex for BadgerDB.
// Queries scan every entry and rank by exact cosine similarity; at the
// index sizes this serves, a full scan beats maintaining an ANN structure.
type EmbeddingIndex struct {
	backend *Backend
}

var _ storage.EmbeddingIndex = (*EmbeddingIndex)(nil)

// NewEmbeddingIndex creates a new EmbeddingIndex.
func NewEmbeddingIndex(backend *Backend) storage.EmbeddingIndex {
	return &EmbeddingIndex{backend: backend}
}

// Close is a no-op; the shared backend owns the database handle.
func (e *EmbeddingIndex) Close() error {
	return nil
}

// Insert adds an entry to the index. Returns storage.ErrDuplicateKey if an
// entry with the same id already exists.
func (e *EmbeddingIndex) Insert(ctx context.Context, entry *core.EmbeddingEntry) error {
	return e.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEmbeddingKey(entry.Id)
		_, err := tx.Get(key)
		if err == nil {
			return storage.ErrDuplicateKey
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		if err := tx.Set(key, storage.MarshalEmbeddingEntry(entry)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

type scoredEntry struct {
	entry *core.EmbeddingEntry
	score float64
}

// Query returns up to k entries ordered nearest-first by cosine similarity
// to the given vector. An empty index yields an empty slice, never an error.
func (e *EmbeddingIndex) Query(ctx context.Context, vector []float32, k int) ([]*core.EmbeddingEntry, error) {
	if k <= 0 {
		return []*core.EmbeddingEntry{}, nil
	}

	scored := []scoredEntry{}
	err := e.forEachEntry(func(entry *core.EmbeddingEntry) error {
		scored = append(scored, scoredEntry{
			entry: entry,
			score: cosineSimilarity(vector, entry.Vector),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Stable keeps key order among equal scores, so results are deterministic.
	slices.SortStableFunc(scored, func(a, b scoredEntry) int {
		if a.score > b.score {
			return -1
		}
		if a.score < b.score {
			return 1
		}
		return 0
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	results := make([]*core.EmbeddingEntry, len(scored))
	for i, s := range scored {
		results[i] = s.entry
	}
	return results, nil
}

// Entries retrieves all index entries.
func (e *EmbeddingIndex) Entries(ctx context.Context) ([]*core.EmbeddingEntry, error) {
	results := []*core.EmbeddingEntry{}
	err := e.forEachEntry(func(entry *core.EmbeddingEntry) error {
		results = append(results, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateVector replaces the stored vector for an entry. Returns
// storage.ErrNotFound if the id does not exist.
func (e *EmbeddingIndex) UpdateVector(ctx context.Context, id string, vector []float32) error {
	return e.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEmbeddingKey(id)
		item, err := tx.Get(key)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var entry *core.EmbeddingEntry
		err = item.Value(func(val []byte) error {
			var err error
			entry, err = storage.UnmarshalEmbeddingEntry(val)
			return err
		})
		if err != nil {
			return err
		}

		entry.Vector = vector
		if err := tx.Set(key, storage.MarshalEmbeddingEntry(entry)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Count returns the number of entries in the index.
func (e *EmbeddingIndex) Count(ctx context.Context) (int, error) {
	count := 0
	err := e.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(embeddingPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (e *EmbeddingIndex) forEachEntry(fn func(*core.EmbeddingEntry) error) error {
	return e.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(embeddingPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entry *core.EmbeddingEntry
			err := iter.Item().Value(func(val []byte) error {
				var err error
				entry, err = storage.UnmarshalEmbeddingEntry(val)
				return err
			})
			if err != nil {
				return err
			}
			if err := fn(entry); err != nil {
				return err
			}
		}
		return nil
	}, false)
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Mismatched lengths and zero vectors yield 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
