package storage

import (
	"context"
	"time"

	"github.com/poiesic/reviewlens/core"
)

// ReviewRepository provides operations for the append-only review store.
// Implementations must be thread-safe and preserve insertion order.
type ReviewRepository interface {
	// AppendReview appends a review record to the store.
	// Generates a new ID from sequence and sets InsertedAt.
	// Returns the record with ID and timestamp populated.
	// Records are immutable once appended: there is no update or delete.
	AppendReview(ctx context.Context, review *core.Review) (*core.Review, error)

	// GetReviews retrieves all stored reviews in insertion order.
	// Returns an empty slice for an empty store.
	GetReviews(ctx context.Context) ([]*core.Review, error)

	// GetReviewsByDateRange retrieves reviews where start <= Date < end,
	// ordered by date.
	GetReviewsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Review, error)

	// GetReviewsSince retrieves reviews where start <= Date, with no upper
	// bound, ordered by date.
	GetReviewsSince(ctx context.Context, start time.Time) ([]*core.Review, error)

	// CountReviews returns the number of stored reviews.
	CountReviews(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}

// EmbeddingIndex stores (id, vector, document, metadata) tuples and supports
// nearest-neighbor retrieval by cosine similarity.
// Implementations must be thread-safe.
type EmbeddingIndex interface {
	// Insert adds an entry to the index. The entry id must be unique within
	// the index; inserting a duplicate id returns ErrDuplicateKey, which
	// callers should treat as an orchestration invariant violation.
	Insert(ctx context.Context, entry *core.EmbeddingEntry) error

	// Query returns up to k entries ordered nearest-first by cosine
	// similarity to the given vector. Returns fewer than k entries if the
	// index holds fewer, and an empty slice (never an error) on an empty
	// index.
	Query(ctx context.Context, vector []float32, k int) ([]*core.EmbeddingEntry, error)

	// Entries retrieves all index entries. Used by maintenance operations
	// such as re-embedding; not part of the query path.
	Entries(ctx context.Context) ([]*core.EmbeddingEntry, error)

	// UpdateVector replaces the stored vector for an entry. Used only by
	// re-embedding maintenance; documents and metadata are never updated.
	// Returns ErrNotFound if the id does not exist.
	UpdateVector(ctx context.Context, id string, vector []float32) error

	// Count returns the number of entries in the index.
	Count(ctx context.Context) (int, error)

	// Close closes the index and releases resources.
	Close() error
}
