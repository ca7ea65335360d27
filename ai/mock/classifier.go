package mock

import (
	"context"
	"strings"

	"github.com/poiesic/reviewlens/ai"
)

// Default lexicons for the deterministic mock classifier.
var (
	mockPositiveWords = []string{
		"great", "amazing", "excellent", "friendly", "good", "love",
		"best", "delicious", "wonderful", "fantastic",
	}
	mockNegativeWords = []string{
		"terrible", "bad", "awful", "horrible", "worst", "disappointed",
		"poor", "never", "waste", "rude",
	}
)

// MockClassifier is a test double for ai.SentimentClassifier.
// It allows custom behavior injection via function fields.
//
// The default behavior is a deterministic lexicon count: the label follows
// whichever of the positive/negative word counts is larger, with confidence
// max(pos, neg) / (pos + neg). Ties with at least one match resolve to
// NEGATIVE; no matches at all yield NEUTRAL with zero confidence.
type MockClassifier struct {
	// ClassifyFunc is called by Classify if set.
	// If nil, uses default deterministic lexicon behavior.
	ClassifyFunc func(ctx context.Context, text string) (ai.Sentiment, error)

	callCount int
}

// NewMockClassifier creates a mock classifier with default deterministic behavior.
// Note: Returns concrete type to allow test assertions and behavior injection.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{}
}

// Classify returns a deterministic sentiment derived from lexicon counts.
func (m *MockClassifier) Classify(ctx context.Context, text string) (ai.Sentiment, error) {
	m.callCount++

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}

	if strings.TrimSpace(text) == "" {
		return ai.Sentiment{Label: ai.LabelNeutral, Confidence: 0}, nil
	}

	pos, neg := lexiconCounts(text)
	switch {
	case pos == 0 && neg == 0:
		return ai.Sentiment{Label: ai.LabelNeutral, Confidence: 0}, nil
	case neg >= pos:
		return ai.Sentiment{Label: ai.LabelNegative, Confidence: confidence(neg, pos)}, nil
	default:
		return ai.Sentiment{Label: ai.LabelPositive, Confidence: confidence(pos, neg)}, nil
	}
}

// CallCount returns the number of times Classify was called.
func (m *MockClassifier) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockClassifier) Reset() {
	m.callCount = 0
	m.ClassifyFunc = nil
}

func lexiconCounts(text string) (pos, neg int) {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:'\"-()[]{}")
		for _, p := range mockPositiveWords {
			if word == p {
				pos++
			}
		}
		for _, n := range mockNegativeWords {
			if word == n {
				neg++
			}
		}
	}
	return pos, neg
}

func confidence(winner, loser int) float64 {
	return float64(winner) / float64(winner+loser)
}
