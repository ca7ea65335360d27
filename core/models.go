package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for stored reviews.
// It is assigned from a database sequence at append time.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// Identical content always produces the same ID.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// SentimentLabel is the polarity assigned to a review by the classifier.
type SentimentLabel string

const (
	// SentimentPositive marks a review expressing satisfaction.
	SentimentPositive SentimentLabel = "POSITIVE"
	// SentimentNegative marks a review expressing dissatisfaction.
	SentimentNegative SentimentLabel = "NEGATIVE"
	// SentimentNeutral marks a review with no clear polarity.
	SentimentNeutral SentimentLabel = "NEUTRAL"
)

// Valid reports whether l is one of the known sentiment labels.
func (l SentimentLabel) Valid() bool {
	return l == SentimentPositive || l == SentimentNegative || l == SentimentNeutral
}

// Review is an analyzed customer review. Records are immutable once appended:
// the review store supports no update or delete.
//
// SentimentScore is a signed confidence in [-1, 1]: the sign encodes polarity
// and the magnitude encodes classifier confidence. Its sign must agree with
// SentimentLabel (non-negative for POSITIVE, non-positive for NEGATIVE, zero
// for NEUTRAL).
type Review struct {
	Id             ID
	Text           string
	Rating         int
	Date           time.Time // When the review was written
	SentimentLabel SentimentLabel
	SentimentScore float64
	IsComplaint    bool
	InsertedAt     time.Time // When the record was appended to the store
}

// MetadataDateFormat is the layout used for EmbeddingMetadata.Date.
const MetadataDateFormat = "2006-01-02 15:04:05"

// EmbeddingMetadata is the denormalized snapshot of a review stored alongside
// its vector. It duplicates fields already present in the review store: the
// similarity index stays self-contained for display, so retrieval never needs
// a join. The snapshot is taken at insertion time and never updated.
type EmbeddingMetadata struct {
	Rating    int
	Date      string // MetadataDateFormat
	Sentiment SentimentLabel
	Complaint bool
}

// EmbeddingEntry is one entry in the similarity index.
type EmbeddingEntry struct {
	Id       string // unique, monotonically assigned: "review_<count>"
	Vector   []float32
	Document string // original review text, duplicated for retrieval display
	Metadata EmbeddingMetadata
}
