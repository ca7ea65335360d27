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


package reviewlens

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/reviewlens/ai"
	"github.com/poiesic/reviewlens/ai/openai"
	"github.com/poiesic/reviewlens/analysis"
	"github.com/poiesic/reviewlens/core"
	"github.com/poiesic/reviewlens/ingestion"
	"github.com/poiesic/reviewlens/reembed"
	"github.com/poiesic/reviewlens/search"
	"github.com/poiesic/reviewlens/storage"
	"github.com/poiesic/reviewlens/storage/badger"
)

// Service wires the stores, AI provider, analyzer, and searcher into one
// handle. It is the entry point for embedding applications and the CLI.
type Service struct {
	backend  *badger.Backend
	reviews  storage.ReviewRepository
	index    storage.EmbeddingIndex
	provider ai.Provider
	analyzer *analysis.Analyzer
	searcher *search.Searcher
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig     *ai.Config
	provider     ai.Provider
	inMemory     bool
	analyzerOpts []analysis.Option
}

// WithAIConfig overrides the default AI provider configuration.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider, bypassing provider
// construction entirely. Used by tests and embedders with their own models.
func WithProvider(provider ai.Provider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps all data in memory for the process lifetime. The file
// path passed to NewService is ignored.
func WithInMemory() ServiceOption {
	return func(o *serviceOptions) {
		o.inMemory = true
	}
}

// WithAnalyzerOptions forwards options to the underlying analyzer.
func WithAnalyzerOptions(opts ...analysis.Option) ServiceOption {
	return func(o *serviceOptions) {
		o.analyzerOpts = append(o.analyzerOpts, opts...)
	}
}

// NewService opens the stores at filePath and assembles the full pipeline.
// An empty filePath implies in-memory storage.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if filePath == "" {
		options.inMemory = true
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	reviews, err := badger.NewReviewRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	index := badger.NewEmbeddingIndex(backend)

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			index.Close()
			reviews.Close()
			backend.Close()
			return nil, err
		}
	}

	analyzer, err := analysis.NewAnalyzer(reviews, index, provider, options.analyzerOpts...)
	if err != nil {
		provider.Close()
		index.Close()
		reviews.Close()
		backend.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(index, provider.Embedder())
	if err != nil {
		provider.Close()
		index.Close()
		reviews.Close()
		backend.Close()
		return nil, err
	}

	return &Service{
		backend:  backend,
		reviews:  reviews,
		index:    index,
		provider: provider,
		analyzer: analyzer,
		searcher: searcher,
		logger:   slog.Default(),
	}, nil
}

// Close releases the AI provider and the stores.
func (s *Service) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.index.Close(); err != nil {
		s.logger.Error("error closing embedding index", "err", err)
		return err
	}
	if err := s.reviews.Close(); err != nil {
		s.logger.Error("error closing review repository", "err", err)
		return err
	}
	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// AddReview analyzes and stores a single review.
func (s *Service) AddReview(ctx context.Context, text string, rating int, date time.Time) (*core.Review, error) {
	return s.analyzer.AddReview(ctx, text, rating, date)
}

// WeeklyReport summarizes the reviews written in the last seven days.
func (s *Service) WeeklyReport(ctx context.Context) (*analysis.WeeklyReport, error) {
	return s.analyzer.WeeklyReport(ctx)
}

// SentimentTrends returns per-date average sentiment across all reviews.
func (s *Service) SentimentTrends(ctx context.Context) ([]analysis.TrendPoint, error) {
	return s.analyzer.SentimentTrends(ctx)
}

// Complaints returns all reviews flagged as complaints.
func (s *Service) Complaints(ctx context.Context) ([]*core.Review, error) {
	return s.analyzer.Complaints(ctx)
}

// TopThemes extracts the most frequent multi-word phrases across all reviews.
func (s *Service) TopThemes(ctx context.Context, limit int) ([]analysis.ThemeCount, error) {
	return s.analyzer.TopThemes(ctx, limit)
}

// CategorizeReviews partitions all reviews into topic buckets.
func (s *Service) CategorizeReviews(ctx context.Context) (map[string][]*core.Review, error) {
	return s.analyzer.CategorizeReviews(ctx)
}

// SimilarReviews finds stored reviews similar to a free-text query.
func (s *Service) SimilarReviews(ctx context.Context, query string, maxHits int) ([]*search.Result, error) {
	return s.searcher.FindSimilar(ctx, query, maxHits)
}

// ReviewRepository exposes the underlying review store.
func (s *Service) ReviewRepository() storage.ReviewRepository {
	return s.reviews
}

// EmbeddingIndex exposes the underlying embedding index.
func (s *Service) EmbeddingIndex() storage.EmbeddingIndex {
	return s.index
}

// NewIngestor creates an ingestor feeding this service's analyzer.
func (s *Service) NewIngestor() (*ingestion.Ingestor, error) {
	return ingestion.NewIngestor(s.analyzer)
}

// NewReembedder creates a re-embedder over this service's index and embedder.
func (s *Service) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(s.index, s.provider.Embedder(), config, progress)
}
