package badger

import (
	"encoding/binary"
	"time"

	"github.com/poiesic/reviewlens/core"
)

// Key prefixes for different data types
const (
	reviewPrefix     = "revrec"
	reviewDatePrefix = "revrecd"
	reviewIDSeq      = "revrecseq"
	embeddingPrefix  = "embrec"
)

// makeReviewKey generates a fixed-width key for a review by ID.
// IDs are encoded in BigEndian so lexicographic key order equals insertion order.
func makeReviewKey(id core.ID) []byte {
	prefix := reviewPrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeReviewDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id
func makeReviewDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := reviewDatePrefix + ":"
	buf := make([]byte, len(prefix)+16) // 8 bytes timestamp + 8 bytes ID
	offset := copy(buf, prefix)
	// BigEndian so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialReviewDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialReviewDateKey(timestamp time.Time) []byte {
	prefix := reviewDatePrefix + ":"
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}

// makeEmbeddingKey generates a key for an embedding entry by its string id.
func makeEmbeddingKey(id string) []byte {
	return []byte(embeddingPrefix + ":" + id)
}
