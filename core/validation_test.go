package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReview() *Review {
	return &Review{
		Text:           "Great service and friendly staff!",
		Rating:         5,
		Date:           time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		SentimentLabel: SentimentPositive,
		SentimentScore: 0.97,
	}
}

func TestValidateReviewInput(t *testing.T) {
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("valid input", func(t *testing.T) {
		assert.NoError(t, ValidateReviewInput("Good food", date))
	})

	t.Run("empty text", func(t *testing.T) {
		err := ValidateReviewInput("", date)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidReview)
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("whitespace-only text", func(t *testing.T) {
		err := ValidateReviewInput("   \t\n", date)
		assert.ErrorIs(t, err, ErrEmptyText)
	})

	t.Run("zero date", func(t *testing.T) {
		err := ValidateReviewInput("Good food", time.Time{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestValidateReview(t *testing.T) {
	t.Run("valid review", func(t *testing.T) {
		assert.NoError(t, ValidateReview(validReview()))
	})

	t.Run("nil review", func(t *testing.T) {
		assert.ErrorIs(t, ValidateReview(nil), ErrInvalidReview)
	})

	t.Run("unknown label", func(t *testing.T) {
		r := validReview()
		r.SentimentLabel = "MIXED"
		assert.ErrorIs(t, ValidateReview(r), ErrInvalidSentimentLabel)
	})

	t.Run("score out of range", func(t *testing.T) {
		r := validReview()
		r.SentimentScore = 1.5
		assert.ErrorIs(t, ValidateReview(r), ErrScoreOutOfRange)
	})

	t.Run("positive label with negative score", func(t *testing.T) {
		r := validReview()
		r.SentimentScore = -0.4
		assert.ErrorIs(t, ValidateReview(r), ErrScoreSignMismatch)
	})

	t.Run("negative label with positive score", func(t *testing.T) {
		r := validReview()
		r.SentimentLabel = SentimentNegative
		r.SentimentScore = 0.8
		assert.ErrorIs(t, ValidateReview(r), ErrScoreSignMismatch)
	})

	t.Run("negative label with non-positive score", func(t *testing.T) {
		r := validReview()
		r.SentimentLabel = SentimentNegative
		r.SentimentScore = -0.8
		assert.NoError(t, ValidateReview(r))
	})

	t.Run("neutral label requires zero score", func(t *testing.T) {
		r := validReview()
		r.SentimentLabel = SentimentNeutral
		r.SentimentScore = 0.1
		assert.ErrorIs(t, ValidateReview(r), ErrScoreSignMismatch)

		r.SentimentScore = 0
		assert.NoError(t, ValidateReview(r))
	})
}
