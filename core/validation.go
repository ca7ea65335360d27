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


package core

import (
	"fmt"
	"strings"
	"time"
)

// ValidateReviewInput validates the caller-supplied fields of a new review.
//
// Validation rules:
//   - Text must not be empty or whitespace-only
//   - Date must not be the zero time
//
// Rating is not validated: the range is conventionally 1-5 but unconstrained.
func ValidateReviewInput(text string, date time.Time) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidReview, ErrEmptyText)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: %w", ErrInvalidReview, ErrInvalidDate)
	}
	return nil
}

// ValidateReview validates a fully analyzed Review according to domain rules.
//
// In addition to the input rules, the derived fields must be consistent:
//   - SentimentLabel must be a known label
//   - SentimentScore must lie in [-1, 1]
//   - SentimentScore sign must agree with SentimentLabel
func ValidateReview(review *Review) error {
	if review == nil {
		return fmt.Errorf("%w: review is nil", ErrInvalidReview)
	}

	if err := ValidateReviewInput(review.Text, review.Date); err != nil {
		return err
	}

	if !review.SentimentLabel.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidReview, ErrInvalidSentimentLabel, review.SentimentLabel)
	}

	if review.SentimentScore < -1 || review.SentimentScore > 1 {
		return fmt.Errorf("%w: %w: %v", ErrInvalidReview, ErrScoreOutOfRange, review.SentimentScore)
	}

	if !scoreSignMatches(review.SentimentLabel, review.SentimentScore) {
		return fmt.Errorf("%w: %w: label %s, score %v",
			ErrInvalidReview, ErrScoreSignMismatch, review.SentimentLabel, review.SentimentScore)
	}

	return nil
}

func scoreSignMatches(label SentimentLabel, score float64) bool {
	switch label {
	case SentimentPositive:
		return score >= 0
	case SentimentNegative:
		return score <= 0
	default:
		return score == 0
	}
}
