package ingestion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/reviewlens/analysis"
	"github.com/poiesic/reviewlens/core"
)

// Ingestor feeds loaded review inputs through the analysis pipeline.
// Records are processed sequentially in input order; the first failure
// aborts the run, reporting the record index.
type Ingestor struct {
	analyzer *analysis.Analyzer
	logger   *slog.Logger
}

// NewIngestor creates an Ingestor over the given analyzer.
func NewIngestor(analyzer *analysis.Analyzer) (*Ingestor, error) {
	if analyzer == nil {
		return nil, ErrAnalyzerRequired
	}
	return &Ingestor{
		analyzer: analyzer,
		logger:   slog.Default().With("component", "ingestor"),
	}, nil
}

// Ingest parses and analyzes every input, returning the stored reviews.
func (ing *Ingestor) Ingest(ctx context.Context, inputs []ReviewInput) ([]*core.Review, error) {
	results := make([]*core.Review, 0, len(inputs))
	for i, input := range inputs {
		parsed, err := Parse(input)
		if err != nil {
			return results, fmt.Errorf("record %d: %w", i, err)
		}

		review, err := ing.analyzer.AddReview(ctx, parsed.Text, parsed.Rating, parsed.Date)
		if err != nil {
			return results, fmt.Errorf("record %d: %w", i, err)
		}
		results = append(results, review)
	}

	ing.logger.Info("ingestion complete", "records", len(results))
	return results, nil
}
