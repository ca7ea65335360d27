package ingestion

import (
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/reviewlens/core"
)

// Date layouts accepted for review input, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReviewInput is one raw review as read from a JSON or CSV source.
// Rating is a pointer so that an absent field is distinguishable from a
// zero rating.
type ReviewInput struct {
	Text   string `json:"text"`
	Rating *int   `json:"rating"`
	Date   string `json:"date"`
}

// ParsedReview is a validated input ready for analysis.
type ParsedReview struct {
	Text   string
	Rating int
	Date   time.Time
}

// Parse validates a raw input and resolves its date. Missing or malformed
// fields are reported, not skipped.
func Parse(input ReviewInput) (ParsedReview, error) {
	if strings.TrimSpace(input.Text) == "" {
		return ParsedReview{}, fmt.Errorf("%w: %w", core.ErrInvalidReview, core.ErrEmptyText)
	}
	if input.Rating == nil {
		return ParsedReview{}, fmt.Errorf("%w: %w", core.ErrInvalidReview, core.ErrMissingRating)
	}
	if strings.TrimSpace(input.Date) == "" {
		return ParsedReview{}, fmt.Errorf("%w: %w: date is empty", core.ErrInvalidReview, core.ErrInvalidDate)
	}

	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, input.Date); err == nil {
			return ParsedReview{
				Text:   input.Text,
				Rating: *input.Rating,
				Date:   date.UTC(),
			}, nil
		}
	}
	return ParsedReview{}, fmt.Errorf("%w: %w: %q", core.ErrInvalidReview, core.ErrInvalidDate, input.Date)
}
