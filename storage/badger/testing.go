package badger

import (
	"github.com/poiesic/reviewlens/storage"
)

// NewMemoryStores opens an in-memory backend and builds both stores on it.
// Intended for tests and for running without durable persistence.
func NewMemoryStores() (storage.ReviewRepository, storage.EmbeddingIndex, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	reviews, err := NewReviewRepository(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	index := NewEmbeddingIndex(backend)
	return reviews, index, backend, nil
}
