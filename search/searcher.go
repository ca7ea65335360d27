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


package search

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"sync"

	"github.com/poiesic/reviewlens/ai"
	"github.com/poiesic/reviewlens/core"
	"github.com/poiesic/reviewlens/storage"
)

// queryCacheCap bounds the query embedding cache. When full, the cache is
// reset rather than evicted entry by entry; query vocabularies are small
// enough that a periodic cold start is cheaper than LRU bookkeeping.
const queryCacheCap = 256

// verbatimBoost is added when every query word appears in the document.
const verbatimBoost = 0.3

// Result is a single search hit.
type Result struct {
	Entry *core.EmbeddingEntry
	Score float64
}

// Searcher finds stored reviews similar to a free-text query. Repeated
// queries skip the embedding call via a content-hash cache.
type Searcher struct {
	index    storage.EmbeddingIndex
	embedder ai.Embedder
	logger   *slog.Logger

	mu    sync.Mutex
	cache map[core.ID][]float32
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the given index and embedder.
func NewSearcher(index storage.EmbeddingIndex, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if index == nil {
		return nil, ErrEmbeddingIndexRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		index:    index,
		embedder: embedder,
		logger:   slog.Default(),
		cache:    make(map[core.ID][]float32),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindSimilar searches for stored reviews similar to the query.
// Returns up to maxHits results, ranked by relevance score. Semantic
// similarity dominates; documents containing every query word get a
// verbatim boost. An empty index yields an empty result, never an error.
func (s *Searcher) FindSimilar(ctx context.Context, query string, maxHits int) ([]*Result, error) {
	if maxHits <= 0 {
		return []*Result{}, nil
	}

	vector, err := s.queryVector(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}

	// Oversample so the verbatim boost can promote entries from just
	// outside the top maxHits.
	candidates, err := s.index.Query(ctx, vector, maxHits*2)
	if err != nil {
		s.logger.Error("error querying for similar entries", "err", err)
		return nil, err
	}

	results := make([]*Result, 0, len(candidates))
	for _, entry := range candidates {
		score := cosine(vector, entry.Vector)
		if containsAllQueryWords(entry.Document, query) {
			score += verbatimBoost
		}
		results = append(results, &Result{Entry: entry, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxHits {
		results = results[:maxHits]
	}
	return results, nil
}

// SimilarDocuments is FindSimilar reduced to the matched review texts.
func (s *Searcher) SimilarDocuments(ctx context.Context, query string, maxHits int) ([]string, error) {
	results, err := s.FindSimilar(ctx, query, maxHits)
	if err != nil {
		return nil, err
	}
	docs := make([]string, len(results))
	for i, r := range results {
		docs[i] = r.Entry.Document
	}
	return docs, nil
}

// queryVector returns the embedding for a query, consulting the cache first.
// Cache keys are content hashes, so identical query text always hits.
func (s *Searcher) queryVector(ctx context.Context, query string) ([]float32, error) {
	key := core.IDFromContent(query)

	s.mu.Lock()
	if vector, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return vector, nil
	}
	s.mu.Unlock()

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if len(s.cache) >= queryCacheCap {
		s.cache = make(map[core.ID][]float32)
	}
	s.cache[key] = vector
	s.mu.Unlock()

	return vector, nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}
	if magA == 0 || magB == 0 {
		return 0
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}
