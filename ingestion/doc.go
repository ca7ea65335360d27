// Package ingestion loads raw reviews from JSON and CSV sources and feeds
// them through the analysis pipeline.
package ingestion
