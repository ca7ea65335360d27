package analysis

import "errors"

var (
	// ErrReviewRepositoryRequired indicates the analyzer was built without a review store.
	ErrReviewRepositoryRequired = errors.New("review repository is required")

	// ErrEmbeddingIndexRequired indicates the analyzer was built without an embedding index.
	ErrEmbeddingIndexRequired = errors.New("embedding index is required")

	// ErrAIProviderRequired indicates the analyzer was built without an AI provider.
	ErrAIProviderRequired = errors.New("AI provider is required")
)
