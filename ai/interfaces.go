package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector has a fixed, model-defined dimension.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// SentimentClassifier assigns a polarity label and confidence to text.
// Implementations must be thread-safe for concurrent use.
type SentimentClassifier interface {
	// Classify analyzes text and returns its sentiment.
	// Input longer than the model's context window is truncated
	// deterministically to the leading tokens rather than erroring.
	// Empty or whitespace-only text yields a neutral result, never an error.
	Classify(ctx context.Context, text string) (Sentiment, error)
}

// Sentiment is the raw classifier output before score normalization.
type Sentiment struct {
	// Label is one of LabelPositive, LabelNegative, LabelNeutral.
	Label string

	// Confidence is the classifier's confidence in the label, in [0, 1].
	Confidence float64
}

// Sentiment labels produced by classifiers.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
	LabelNeutral  = "NEUTRAL"
)

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Embedder and SentimentClassifier
// instances, ensuring they share configuration and resources appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// SentimentClassifier returns the sentiment classification service.
	// The returned SentimentClassifier is safe for concurrent use.
	SentimentClassifier() SentimentClassifier

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
