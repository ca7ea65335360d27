package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/reviewlens/core"
)

func TestReviewAppendBasics(t *testing.T) {
	reviews, index, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() {
		index.Close()
		reviews.Close()
		backend.Close()
	}()

	ctx := context.Background()

	review := &core.Review{
		Text:           "The pasta was delicious and the staff was friendly.",
		Rating:         5,
		Date:           time.Now().UTC(),
		SentimentLabel: core.SentimentPositive,
		SentimentScore: 0.95,
	}

	added, err := reviews.AppendReview(ctx, review)
	if err != nil {
		t.Fatalf("Failed to append review: %v", err)
	}

	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	all, err := reviews.GetReviews(ctx)
	if err != nil {
		t.Fatalf("Failed to get reviews: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("Expected 1 review, got %d", len(all))
	}
	if all[0].Text != review.Text {
		t.Fatalf("Expected %q, got %q", review.Text, all[0].Text)
	}
	if all[0].SentimentLabel != core.SentimentPositive {
		t.Fatalf("Expected POSITIVE label, got %s", all[0].SentimentLabel)
	}
}

func TestReviewInsertionOrder(t *testing.T) {
	reviews, index, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { index.Close(); reviews.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC()

	// Dates deliberately out of order: retrieval order must follow
	// insertion, not dates.
	texts := []string{"first", "second", "third", "fourth"}
	dates := []time.Time{now, now.Add(-48 * time.Hour), now.Add(24 * time.Hour), now.Add(-1 * time.Hour)}
	var lastID core.ID
	for i, text := range texts {
		added, err := reviews.AppendReview(ctx, &core.Review{
			Text:           text,
			Rating:         3,
			Date:           dates[i],
			SentimentLabel: core.SentimentNeutral,
		})
		if err != nil {
			t.Fatalf("Failed to append review %d: %v", i, err)
		}
		if added.Id <= lastID {
			t.Fatalf("Expected monotonically increasing IDs, got %d after %d", added.Id, lastID)
		}
		lastID = added.Id
	}

	all, err := reviews.GetReviews(ctx)
	if err != nil {
		t.Fatalf("Failed to get reviews: %v", err)
	}
	if len(all) != len(texts) {
		t.Fatalf("Expected %d reviews, got %d", len(texts), len(all))
	}
	for i, r := range all {
		if r.Text != texts[i] {
			t.Fatalf("Expected %q at position %d, got %q", texts[i], i, r.Text)
		}
	}

	count, err := reviews.CountReviews(ctx)
	if err != nil {
		t.Fatalf("Failed to count reviews: %v", err)
	}
	if count != len(texts) {
		t.Fatalf("Expected count %d, got %d", len(texts), count)
	}
}

func TestReviewDateRange(t *testing.T) {
	reviews, index, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { index.Close(); reviews.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	dates := []time.Time{
		now.Add(-10 * 24 * time.Hour),
		now.Add(-5 * 24 * time.Hour),
		now.Add(-2 * 24 * time.Hour),
		now,
	}
	for i, date := range dates {
		_, err := reviews.AppendReview(ctx, &core.Review{
			Text:           "review",
			Rating:         i + 1,
			Date:           date,
			SentimentLabel: core.SentimentNeutral,
		})
		if err != nil {
			t.Fatalf("Failed to append review: %v", err)
		}
	}

	// Last week: picks up the -5d and -2d reviews plus today's.
	results, err := reviews.GetReviewsByDateRange(ctx, now.Add(-7*24*time.Hour), now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Failed to get reviews by date range: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 reviews, got %d", len(results))
	}

	// Ordered by date, oldest first.
	for i := 1; i < len(results); i++ {
		if results[i].Date.Before(results[i-1].Date) {
			t.Fatalf("Expected results ordered by date, got %v before %v", results[i-1].Date, results[i].Date)
		}
	}

	// End bound is exclusive.
	results, err = reviews.GetReviewsByDateRange(ctx, now.Add(-7*24*time.Hour), now)
	if err != nil {
		t.Fatalf("Failed to get reviews by date range: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 reviews with exclusive end, got %d", len(results))
	}
}

func TestReviewsSince(t *testing.T) {
	reviews, index, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { index.Close(); reviews.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	dates := []time.Time{
		now.Add(-10 * 24 * time.Hour),
		now.Add(-7 * 24 * time.Hour),
		now,
		now.Add(time.Hour),
	}
	for i, date := range dates {
		_, err := reviews.AppendReview(ctx, &core.Review{
			Text:           "review",
			Rating:         i + 1,
			Date:           date,
			SentimentLabel: core.SentimentNeutral,
		})
		if err != nil {
			t.Fatalf("Failed to append review: %v", err)
		}
	}

	// No upper bound: the start-boundary, current, and future-dated
	// reviews are all included.
	results, err := reviews.GetReviewsSince(ctx, now.Add(-7*24*time.Hour))
	if err != nil {
		t.Fatalf("Failed to get reviews since: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Expected 3 reviews, got %d", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i].Date.Before(results[i-1].Date) {
			t.Fatalf("Expected results ordered by date, got %v before %v", results[i-1].Date, results[i].Date)
		}
	}

	// Start past every stored date.
	results, err = reviews.GetReviewsSince(ctx, now.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("Failed to get reviews since: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Expected no reviews, got %d", len(results))
	}
}

func TestEmptyStore(t *testing.T) {
	reviews, index, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { index.Close(); reviews.Close(); backend.Close() }()

	ctx := context.Background()

	all, err := reviews.GetReviews(ctx)
	if err != nil {
		t.Fatalf("Failed to get reviews: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("Expected empty slice, got %d reviews", len(all))
	}

	count, err := reviews.CountReviews(ctx)
	if err != nil {
		t.Fatalf("Failed to count reviews: %v", err)
	}
	if count != 0 {
		t.Fatalf("Expected count 0, got %d", count)
	}
}
