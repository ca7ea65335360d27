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


package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/poiesic/reviewlens/ai"
	"github.com/poiesic/reviewlens/core"
	"github.com/poiesic/reviewlens/storage"
)

const defaultNeighborCount = 3

// Analyzer orchestrates the review analysis pipeline: embedding, similarity
// retrieval, context-augmented sentiment classification, complaint detection,
// and persistence into the review store and embedding index.
//
// Writes are serialized by a mutex, so the store count and index count move
// in lockstep and index ids derived from the count are unique. Reads run on
// consistent storage snapshots and take no lock.
type Analyzer struct {
	reviews    storage.ReviewRepository
	index      storage.EmbeddingIndex
	embedder   ai.Embedder
	classifier ai.SentimentClassifier
	detector   *ComplaintDetector
	neighbors  int

	mu     sync.Mutex
	logger *slog.Logger
	clock  func() time.Time
}

// Option customizes an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used by the analyzer.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithNeighborCount sets how many similar reviews augment the classifier
// context. Zero disables context augmentation.
func WithNeighborCount(n int) Option {
	return func(a *Analyzer) {
		a.neighbors = n
	}
}

// WithDetector replaces the default complaint detector.
func WithDetector(detector *ComplaintDetector) Option {
	return func(a *Analyzer) {
		a.detector = detector
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(clock func() time.Time) Option {
	return func(a *Analyzer) {
		a.clock = clock
	}
}

// NewAnalyzer creates an Analyzer over the given stores and AI provider.
func NewAnalyzer(reviews storage.ReviewRepository, index storage.EmbeddingIndex, provider ai.Provider, opts ...Option) (*Analyzer, error) {
	if reviews == nil {
		return nil, ErrReviewRepositoryRequired
	}
	if index == nil {
		return nil, ErrEmbeddingIndexRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	a := &Analyzer{
		reviews:    reviews,
		index:      index,
		embedder:   provider.Embedder(),
		classifier: provider.SentimentClassifier(),
		detector:   NewComplaintDetector(),
		neighbors:  defaultNeighborCount,
		logger:     slog.Default().With("component", "analyzer"),
		clock:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// AddReview runs the full analysis pipeline for one review and persists the
// result. The returned record carries the assigned sentiment and complaint
// flag. Validation failures and model failures leave both stores untouched.
func (a *Analyzer) AddReview(ctx context.Context, text string, rating int, date time.Time) (*core.Review, error) {
	if err := core.ValidateReviewInput(text, date); err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	vector, err := a.embedder.EmbedText(ctx, text)
	if err != nil {
		return nil, err
	}

	// Pull similar prior reviews and classify the new text in their company.
	// Neighbors come first so the new review reads as the conclusion.
	neighbors, err := a.index.Query(ctx, vector, a.neighbors)
	if err != nil {
		return nil, err
	}
	parts := make([]string, 0, len(neighbors)+1)
	for _, n := range neighbors {
		parts = append(parts, n.Document)
	}
	parts = append(parts, text)
	contextWindow := strings.Join(parts, " ")

	sentiment, err := a.classifier.Classify(ctx, contextWindow)
	if err != nil {
		return nil, err
	}
	label, score, err := normalizeSentiment(sentiment)
	if err != nil {
		return nil, err
	}

	isComplaint := a.detector.Detect(contextWindow)

	review, err := a.reviews.AppendReview(ctx, &core.Review{
		Text:           text,
		Rating:         rating,
		Date:           date,
		SentimentLabel: label,
		SentimentScore: score,
		IsComplaint:    isComplaint,
	})
	if err != nil {
		return nil, err
	}

	count, err := a.reviews.CountReviews(ctx)
	if err != nil {
		return nil, err
	}

	entry := &core.EmbeddingEntry{
		Id:       fmt.Sprintf("review_%d", count),
		Vector:   vector,
		Document: text,
		Metadata: core.EmbeddingMetadata{
			Rating:    rating,
			Date:      date.Format(core.MetadataDateFormat),
			Sentiment: label,
			Complaint: isComplaint,
		},
	}
	if err := a.index.Insert(ctx, entry); err != nil {
		return nil, err
	}

	a.logger.Debug("review analyzed",
		"id", review.Id,
		"sentiment", label,
		"score", score,
		"complaint", isComplaint,
		"neighbors", len(neighbors))

	return review, nil
}

// normalizeSentiment folds a classifier label and confidence into a store
// label and signed score. Positive confidence keeps its sign, negative
// confidence is negated, neutral is pinned to zero.
func normalizeSentiment(s ai.Sentiment) (core.SentimentLabel, float64, error) {
	switch s.Label {
	case ai.LabelPositive:
		return core.SentimentPositive, s.Confidence, nil
	case ai.LabelNegative:
		return core.SentimentNegative, -s.Confidence, nil
	case ai.LabelNeutral:
		return core.SentimentNeutral, 0, nil
	default:
		return "", 0, fmt.Errorf("%w: unknown sentiment label %q", ai.ErrMalformedOutput, s.Label)
	}
}

// WeeklyReport summarizes the reviews dated within the last seven days.
// The window has no upper bound, so reviews dated at or after the
// generation instant are still counted.
func (a *Analyzer) WeeklyReport(ctx context.Context) (*WeeklyReport, error) {
	now := a.clock().UTC()
	reviews, err := a.reviews.GetReviewsSince(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	return BuildWeeklyReport(reviews, now), nil
}

// SentimentTrends returns per-date average sentiment across all reviews.
func (a *Analyzer) SentimentTrends(ctx context.Context) ([]TrendPoint, error) {
	reviews, err := a.reviews.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	return SentimentTrends(reviews), nil
}

// Complaints returns all reviews flagged as complaints, in insertion order.
func (a *Analyzer) Complaints(ctx context.Context) ([]*core.Review, error) {
	reviews, err := a.reviews.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	return Complaints(reviews), nil
}

// TopThemes extracts the most frequent multi-word phrases across all reviews.
func (a *Analyzer) TopThemes(ctx context.Context, limit int) ([]ThemeCount, error) {
	reviews, err := a.reviews.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	return TopThemes(reviews, limit), nil
}

// CategorizeReviews partitions all reviews into topic buckets.
func (a *Analyzer) CategorizeReviews(ctx context.Context) (map[string][]*core.Review, error) {
	reviews, err := a.reviews.GetReviews(ctx)
	if err != nil {
		return nil, err
	}
	return CategorizeAll(reviews), nil
}
