package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/reviewlens/core"
	"github.com/poiesic/reviewlens/storage"
)

func entry(id string, vector []float32, doc string) *core.EmbeddingEntry {
	return &core.EmbeddingEntry{
		Id:       id,
		Vector:   vector,
		Document: doc,
		Metadata: core.EmbeddingMetadata{
			Rating:    4,
			Date:      "2025-06-01 12:00:00",
			Sentiment: core.SentimentPositive,
		},
	}
}

func TestEmbeddingInsertAndCount(t *testing.T) {
	reviews, index, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { index.Close(); reviews.Close(); backend.Close() }()

	ctx := context.Background()

	if err := index.Insert(ctx, entry("review_1", []float32{1, 0, 0}, "first")); err != nil {
		t.Fatalf("Failed to insert entry: %v", err)
	}
	if err := index.Insert(ctx, entry("review_2", []float32{0, 1, 0}, "second")); err != nil {
		t.Fatalf("Failed to insert entry: %v", err)
	}

	count, err := index.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count entries: %v", err)
	}
	if count != 2 {
		t.Fatalf("Expected 2 entries, got %d", count)
	}

	// Duplicate ids are rejected.
	err = index.Insert(ctx, entry("review_1", []float32{0, 0, 1}, "dup"))
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestEmbeddingQueryNearestFirst(t *testing.T) {
	reviews, index, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { index.Close(); reviews.Close(); backend.Close() }()

	ctx := context.Background()

	entries := []*core.EmbeddingEntry{
		entry("review_1", []float32{1, 0, 0}, "along x"),
		entry("review_2", []float32{0, 1, 0}, "along y"),
		entry("review_3", []float32{0.9, 0.1, 0}, "near x"),
	}
	for _, e := range entries {
		if err := index.Insert(ctx, e); err != nil {
			t.Fatalf("Failed to insert entry: %v", err)
		}
	}

	results, err := index.Query(ctx, []float32{1, 0, 0}, 2)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Id != "review_1" {
		t.Fatalf("Expected review_1 nearest, got %s", results[0].Id)
	}
	if results[1].Id != "review_3" {
		t.Fatalf("Expected review_3 second, got %s", results[1].Id)
	}

	// k larger than the index returns everything.
	results, err = index.Query(ctx, []float32{1, 0, 0}, 10)
	if err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
}

func TestEmbeddingQueryEmptyIndex(t *testing.T) {
	reviews, index, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { index.Close(); reviews.Close(); backend.Close() }()

	results, err := index.Query(context.Background(), []float32{1, 0, 0}, 3)
	if err != nil {
		t.Fatalf("Expected no error on empty index, got %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Expected empty results, got %d", len(results))
	}
}

func TestEmbeddingUpdateVector(t *testing.T) {
	reviews, index, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { index.Close(); reviews.Close(); backend.Close() }()

	ctx := context.Background()

	if err := index.Insert(ctx, entry("review_1", []float32{1, 0, 0}, "doc")); err != nil {
		t.Fatalf("Failed to insert entry: %v", err)
	}

	if err := index.UpdateVector(ctx, "review_1", []float32{0, 1, 0}); err != nil {
		t.Fatalf("Failed to update vector: %v", err)
	}

	all, err := index.Entries(ctx)
	if err != nil {
		t.Fatalf("Failed to get entries: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(all))
	}
	if all[0].Vector[0] != 0 || all[0].Vector[1] != 1 {
		t.Fatalf("Expected updated vector, got %v", all[0].Vector)
	}
	// Document and metadata survive the update.
	if all[0].Document != "doc" {
		t.Fatalf("Expected document preserved, got %q", all[0].Document)
	}

	err = index.UpdateVector(ctx, "review_99", []float32{1, 0, 0})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 0}, []float32{1, 0}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
		{"length mismatch", []float32{1, 0}, []float32{1, 0, 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cosineSimilarity(tc.a, tc.b)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}
