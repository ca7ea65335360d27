package ingestion

import "errors"

var (
	// ErrBadHeader indicates a CSV source is missing a required column.
	ErrBadHeader = errors.New("bad CSV header")

	// ErrAnalyzerRequired indicates the ingestor was built without an analyzer.
	ErrAnalyzerRequired = errors.New("analyzer is required")
)
