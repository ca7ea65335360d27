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


package reembed

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/reviewlens/ai"
	"github.com/poiesic/reviewlens/core"
	"github.com/poiesic/reviewlens/storage"
)

// Config holds configuration for the re-embedding operation.
type Config struct {
	// BatchSize is the number of entries embedded per model call
	BatchSize int

	// PoolSize is the number of batches embedded concurrently
	PoolSize int

	// ReportInterval is how often to report progress (number of entries)
	ReportInterval int

	// MaxRetries is the maximum number of attempts for failed embedding calls
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	return &Config{
		BatchSize:      100,
		PoolSize:       poolSize,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reembedder regenerates the vectors of every embedding index entry with the
// configured embedder. Documents, ids, and metadata are left untouched, so
// the index can be migrated to a new embedding model in place.
type Reembedder struct {
	index    storage.EmbeddingIndex
	embedder ai.Embedder
	config   *Config
	progress io.Writer
}

// NewReembedder creates a new re-embedder.
// progress: where to write progress output (typically os.Stderr)
func NewReembedder(index storage.EmbeddingIndex, embedder ai.Embedder, config *Config, progress io.Writer) *Reembedder {
	if config == nil {
		config = DefaultConfig()
	}
	return &Reembedder{
		index:    index,
		embedder: embedder,
		config:   config,
		progress: progress,
	}
}

// Run executes the re-embedding operation across the whole index.
// Batches are embedded concurrently on a worker pool; the first failure
// stops new work and is returned after in-flight batches drain.
func (r *Reembedder) Run(ctx context.Context) error {
	entries, err := r.index.Entries(ctx)
	if err != nil {
		return fmt.Errorf("failed to load index entries: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintf(r.progress, "No entries found in index (0 entries)\n")
		return nil
	}

	fmt.Fprintf(r.progress, "Starting re-embedding of %d entries (batch size: %d, workers: %d)\n",
		len(entries), r.config.BatchSize, r.config.PoolSize)

	pool, err := ants.NewPool(r.config.PoolSize)
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	tracker := NewProgressTracker(r.progress, len(entries), r.config.ReportInterval)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for start := 0; start < len(entries); start += r.config.BatchSize {
		if runCtx.Err() != nil {
			break
		}
		end := min(start+r.config.BatchSize, len(entries))
		batch := entries[start:end]

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			if err := r.processBatch(runCtx, batch); err != nil {
				fail(err)
				return
			}
			tracker.Add(len(batch))
		})
		if err != nil {
			wg.Done()
			fail(fmt.Errorf("failed to submit batch: %w", err))
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	tracker.Finish()
	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Re-embedding complete. Processed %d entries in %v (%.1f entries/sec)\n",
		len(entries), elapsed.Round(time.Second), float64(len(entries))/elapsed.Seconds())
	return nil
}

// processBatch embeds one batch of documents and writes the new vectors back.
func (r *Reembedder) processBatch(ctx context.Context, batch []*core.EmbeddingEntry) error {
	texts := make([]string, len(batch))
	for i, entry := range batch {
		texts[i] = entry.Document
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = r.embedder.EmbedTexts(ctx, texts)
		return err
	}, r.config.MaxRetries, r.config.RetryDelay)
	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", r.config.MaxRetries, err)
	}

	if len(embeddings) != len(batch) {
		return fmt.Errorf("%w: expected %d, got %d", ErrEmbeddingCountMismatch, len(batch), len(embeddings))
	}

	for i, entry := range batch {
		vector := NormalizeVector(embeddings[i])
		if err := r.index.UpdateVector(ctx, entry.Id, vector); err != nil {
			return fmt.Errorf("failed to update vector for %s: %w", entry.Id, err)
		}
	}
	return nil
}
