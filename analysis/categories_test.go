package analysis

import (
	"testing"

	"github.com/poiesic/reviewlens/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"service", "The staff was very attentive", CategoryService},
		{"food", "The food was delicious", CategoryFood},
		{"ambiance", "Loved the cozy atmosphere", CategoryAmbiance},
		{"price", "Way too expensive for what you get", CategoryPrice},
		{"other", "We arrived at 8pm on a Tuesday", CategoryOther},
		// Markers match as substrings, so related words that only share a
		// stem fall through: "delicious" does not contain "dish".
		{"no stemming", "The pasta was delicious", CategoryOther},
		// Service outranks food when both match.
		{"priority", "The waiter brought the wrong dish", CategoryService},
		{"case insensitive", "AMAZING FOOD", CategoryFood},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Categorize(tc.text))
		})
	}
}

func TestCategorizeAll(t *testing.T) {
	reviews := []*core.Review{
		{Id: 1, Text: "Friendly staff"},
		{Id: 2, Text: "Delicious menu"},
		{Id: 3, Text: "Parking was easy"},
	}

	buckets := CategorizeAll(reviews)

	// All category keys present even when empty.
	require.Len(t, buckets, 5)
	assert.Len(t, buckets[CategoryService], 1)
	assert.Len(t, buckets[CategoryFood], 1)
	assert.Len(t, buckets[CategoryOther], 1)
	assert.Empty(t, buckets[CategoryAmbiance])
	assert.Empty(t, buckets[CategoryPrice])

	// Each review lands in exactly one bucket.
	total := 0
	for _, bucket := range buckets {
		total += len(bucket)
	}
	assert.Equal(t, len(reviews), total)
}
