// Package search provides free-text similarity search over stored reviews.
//
// Queries are embedded and matched against the embedding index by cosine
// similarity, with a fixed boost for documents containing every query word.
// Query embeddings are cached by content hash.
package search
