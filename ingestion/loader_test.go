package ingestion

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/poiesic/reviewlens/ai/mock"
	"github.com/poiesic/reviewlens/analysis"
	"github.com/poiesic/reviewlens/core"
	storagebadger "github.com/poiesic/reviewlens/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	src := `[
		{"text": "Great pasta", "rating": 5, "date": "2025-06-01"},
		{"text": "Cold soup", "rating": 2, "date": "2025-06-02 19:30:00"}
	]`

	inputs, err := LoadJSON(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "Great pasta", inputs[0].Text)
	require.NotNil(t, inputs[0].Rating)
	assert.Equal(t, 5, *inputs[0].Rating)

	_, err = LoadJSON(strings.NewReader("{not json"))
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	src := "date,text,rating\n2025-06-01,Great pasta,5\n2025-06-02,Cold soup,2\n"

	inputs, err := LoadCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "Great pasta", inputs[0].Text)
	require.NotNil(t, inputs[1].Rating)
	assert.Equal(t, 2, *inputs[1].Rating)
	assert.Equal(t, "2025-06-02", inputs[1].Date)
}

func TestLoadCSVMissingColumn(t *testing.T) {
	src := "text,rating\nGreat pasta,5\n"

	_, err := LoadCSV(strings.NewReader(src))
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestLoadCSVEmptyRating(t *testing.T) {
	src := "text,rating,date\nGreat pasta,,2025-06-01\n"

	inputs, err := LoadCSV(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Nil(t, inputs[0].Rating)
}

func TestParse(t *testing.T) {
	rating := 4

	t.Run("valid", func(t *testing.T) {
		parsed, err := Parse(ReviewInput{Text: "Good", Rating: &rating, Date: "2025-06-01"})
		require.NoError(t, err)
		assert.Equal(t, 4, parsed.Rating)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), parsed.Date)
	})

	t.Run("rfc3339 date", func(t *testing.T) {
		parsed, err := Parse(ReviewInput{Text: "Good", Rating: &rating, Date: "2025-06-01T19:30:00Z"})
		require.NoError(t, err)
		assert.Equal(t, 19, parsed.Date.Hour())
	})

	t.Run("empty text", func(t *testing.T) {
		_, err := Parse(ReviewInput{Text: "  ", Rating: &rating, Date: "2025-06-01"})
		assert.ErrorIs(t, err, core.ErrEmptyText)
	})

	t.Run("missing rating", func(t *testing.T) {
		_, err := Parse(ReviewInput{Text: "Good", Date: "2025-06-01"})
		assert.ErrorIs(t, err, core.ErrMissingRating)
	})

	t.Run("bad date", func(t *testing.T) {
		_, err := Parse(ReviewInput{Text: "Good", Rating: &rating, Date: "June 1st"})
		assert.ErrorIs(t, err, core.ErrInvalidDate)
	})
}

func TestIngest(t *testing.T) {
	reviews, index, backend, err := storagebadger.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { index.Close(); reviews.Close(); backend.Close() })

	analyzer, err := analysis.NewAnalyzer(reviews, index, mock.NewMockProvider())
	require.NoError(t, err)
	ingestor, err := NewIngestor(analyzer)
	require.NoError(t, err)

	rating := 5
	badRating := 1
	ctx := context.Background()

	stored, err := ingestor.Ingest(ctx, []ReviewInput{
		{Text: "Great pasta and friendly staff", Rating: &rating, Date: "2025-06-01"},
		{Text: "Terrible service, never again", Rating: &badRating, Date: "2025-06-02"},
	})
	require.NoError(t, err)
	require.Len(t, stored, 2)

	count, err := reviews.CountReviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIngestFailFast(t *testing.T) {
	reviews, index, backend, err := storagebadger.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { index.Close(); reviews.Close(); backend.Close() })

	analyzer, err := analysis.NewAnalyzer(reviews, index, mock.NewMockProvider())
	require.NoError(t, err)
	ingestor, err := NewIngestor(analyzer)
	require.NoError(t, err)

	rating := 5
	ctx := context.Background()

	stored, err := ingestor.Ingest(ctx, []ReviewInput{
		{Text: "Great pasta", Rating: &rating, Date: "2025-06-01"},
		{Text: "No rating here", Date: "2025-06-02"},
		{Text: "Never reached", Rating: &rating, Date: "2025-06-03"},
	})
	require.ErrorIs(t, err, core.ErrMissingRating)
	assert.Contains(t, err.Error(), "record 1")
	assert.Len(t, stored, 1)

	count, err := reviews.CountReviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
