// Package reembed provides batch re-embedding of the embedding index,
// used when switching embedding models.
package reembed
