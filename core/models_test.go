package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("Great service and friendly staff!")
		b := IDFromContent("Great service and friendly staff!")
		assert.Equal(t, a, b)
	})

	t.Run("different content produces different IDs", func(t *testing.T) {
		a := IDFromContent("Food was amazing")
		b := IDFromContent("Food was amazing too")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		// Should not panic; empty text still hashes to a stable ID.
		a := IDFromContent("")
		b := IDFromContent("")
		assert.Equal(t, a, b)
	})
}

func TestSentimentLabel_Valid(t *testing.T) {
	assert.True(t, SentimentPositive.Valid())
	assert.True(t, SentimentNegative.Valid())
	assert.True(t, SentimentNeutral.Valid())
	assert.False(t, SentimentLabel("").Valid())
	assert.False(t, SentimentLabel("positive").Valid())
	assert.False(t, SentimentLabel("MIXED").Valid())
}
