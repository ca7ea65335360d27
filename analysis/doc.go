// Package analysis implements the review analysis pipeline and the
// aggregate reporting built on top of it.
//
// The Analyzer is the write path: each new review is embedded, enriched
// with its nearest stored neighbors, classified for sentiment in that
// context, checked for complaint language, and appended to both stores
// under a single writer lock. The remaining files are pure functions over
// stored reviews: weekly reports, per-date sentiment trends, complaint
// filtering, theme extraction, and topic categorization.
package analysis
