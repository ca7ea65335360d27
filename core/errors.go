// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidReview indicates a Review failed validation.
	// Callers can correct the input and retry.
	ErrInvalidReview = errors.New("invalid review")

	// ErrEmptyText indicates the review text is empty or whitespace-only.
	ErrEmptyText = errors.New("review text cannot be empty")

	// ErrMissingRating indicates an ingested review omitted the rating field.
	ErrMissingRating = errors.New("review rating is required")

	// ErrInvalidDate indicates the review date is missing or unparseable.
	ErrInvalidDate = errors.New("review date is missing or invalid")

	// ErrInvalidSentimentLabel indicates an unknown sentiment label value.
	ErrInvalidSentimentLabel = errors.New("invalid sentiment label")

	// ErrScoreOutOfRange indicates a sentiment score outside [-1, 1].
	ErrScoreOutOfRange = errors.New("sentiment score out of range")

	// ErrScoreSignMismatch indicates a sentiment score whose sign disagrees
	// with the sentiment label.
	ErrScoreSignMismatch = errors.New("sentiment score sign does not match label")
)
