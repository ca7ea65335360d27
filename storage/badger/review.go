package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/reviewlens/core"
	"github.com/poiesic/reviewlens/storage"
)

// ReviewRepository implements storage.ReviewRepository for BadgerDB.
// The store is append-only: records are never updated or deleted.
type ReviewRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ReviewRepository = (*ReviewRepository)(nil)

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(backend *Backend) (storage.ReviewRepository, error) {
	idSeq, err := backend.GetSequence(reviewIDSeq)
	if err != nil {
		return nil, err
	}

	return &ReviewRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ReviewRepository) Close() error {
	return r.idSeq.Release()
}

// AppendReview appends a review record to the store, assigning its ID and
// InsertedAt timestamp.
func (r *ReviewRepository) AppendReview(ctx context.Context, review *core.Review) (*core.Review, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		nextID, err := r.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = r.idSeq.Next()
			if err != nil {
				return err
			}
		}
		review.Id = core.ID(nextID)
		review.InsertedAt = time.Now().UTC()

		// Store primary record
		key := makeReviewKey(review.Id)
		if err := tx.Set(key, storage.MarshalReview(review)); err != nil {
			return err
		}

		// Update date index
		dateKey := makeReviewDateKey(review.Date, review.Id)
		if err := tx.Set(dateKey, storage.MarshalID(review.Id)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}

	return review, nil
}

// GetReviews retrieves all stored reviews in insertion order.
func (r *ReviewRepository) GetReviews(ctx context.Context) ([]*core.Review, error) {
	results := []*core.Review{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reviewPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Keys are BigEndian-encoded IDs, so key order is insertion order.
		for iter.Rewind(); iter.Valid(); iter.Next() {
			var review *core.Review
			err := iter.Item().Value(func(val []byte) error {
				var err error
				review, err = storage.UnmarshalReview(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, review)
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// GetReviewsByDateRange retrieves reviews where start <= Date < end, ordered by date.
func (r *ReviewRepository) GetReviewsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Review, error) {
	return r.scanDateIndex(start, makePartialReviewDateKey(end))
}

// GetReviewsSince retrieves reviews where start <= Date, with no upper
// bound, ordered by date.
func (r *ReviewRepository) GetReviewsSince(ctx context.Context, start time.Time) ([]*core.Review, error) {
	return r.scanDateIndex(start, nil)
}

// scanDateIndex walks the date index from start in date order. A nil endKey
// scans to the end of the index; otherwise the scan stops at the first key
// at or past endKey.
func (r *ReviewRepository) scanDateIndex(start time.Time, endKey []byte) ([]*core.Review, error) {
	results := []*core.Review{}
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialReviewDateKey(start)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.ValidForPrefix([]byte(reviewDatePrefix + ":")); iter.Next() {
			key := iter.Item().Key()
			if endKey != nil && slices.Compare(key[:len(endKey)], endKey) >= 0 {
				break
			}

			// Read the ID from the index
			var reviewID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				reviewID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			review, err := r.readReview(tx, makeReviewKey(reviewID))
			if err != nil {
				return err
			}
			if review != nil {
				results = append(results, review)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CountReviews returns the number of stored reviews.
func (r *ReviewRepository) CountReviews(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(reviewPrefix + ":")
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

// readReview reads and unmarshals a review by key within a transaction.
// Returns nil without error if the key does not exist.
func (r *ReviewRepository) readReview(tx *badger.Txn, key []byte) (*core.Review, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var review *core.Review
	err = item.Value(func(val []byte) error {
		var err error
		review, err = storage.UnmarshalReview(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}
