package ai

import "errors"

var (
	// ErrModelUnavailable indicates the underlying model or tokenizer could
	// not be loaded. Fatal at provider construction time.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrMalformedOutput indicates the classification backend returned output
	// that could not be parsed or validated, even after retries.
	ErrMalformedOutput = errors.New("malformed model output")
)
