package analysis

import (
	"testing"

	"github.com/poiesic/reviewlens/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRuns(t *testing.T) {
	// Stop words split runs; punctuation is trimmed.
	runs := contentRuns("The friendly staff served great pasta, and the cozy patio was lovely.")
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"friendly", "staff", "served", "great", "pasta"}, runs[0])
	assert.Equal(t, []string{"cozy", "patio"}, runs[1])
	assert.Equal(t, []string{"lovely"}, runs[2])
}

func TestTopThemes(t *testing.T) {
	reviews := []*core.Review{
		{Text: "The friendly staff in the evening"},
		{Text: "We had friendly staff at dinner"},
		{Text: "Great pasta and friendly staff"},
		{Text: "Great pasta for the table"},
	}

	themes := TopThemes(reviews, 10)
	require.NotEmpty(t, themes)
	assert.Equal(t, "friendly staff", themes[0].Phrase)
	assert.Equal(t, 3, themes[0].Count)
	assert.Equal(t, "great pasta", themes[1].Phrase)
	assert.Equal(t, 2, themes[1].Count)

	// Single content words never become themes.
	for _, theme := range themes {
		assert.Contains(t, theme.Phrase, " ")
	}
}

func TestTopThemesDeterministicTieBreak(t *testing.T) {
	reviews := []*core.Review{
		{Text: "slow service tonight"},
		{Text: "cold soup arrived"},
	}

	// Same counts: first-seen order wins, and repeated runs agree.
	first := TopThemes(reviews, 10)
	for range 10 {
		again := TopThemes(reviews, 10)
		assert.Equal(t, first, again)
	}
	require.Len(t, first, 2)
	assert.Equal(t, "slow service tonight", first[0].Phrase)
	assert.Equal(t, "cold soup arrived", first[1].Phrase)
}

func TestTopThemesLimit(t *testing.T) {
	reviews := []*core.Review{
		{Text: "slow service, but cold soup"},
	}

	themes := TopThemes(reviews, 1)
	require.Len(t, themes, 1)

	assert.Empty(t, TopThemes(nil, 10))
}
