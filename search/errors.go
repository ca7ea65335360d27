package search

import "errors"

var (
	// ErrEmbeddingIndexRequired indicates the searcher was built without an embedding index.
	ErrEmbeddingIndexRequired = errors.New("embedding index is required")

	// ErrEmbedderRequired indicates the searcher was built without an embedder.
	ErrEmbedderRequired = errors.New("embedder is required")
)
