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


package analysis

import (
	"maps"
	"strings"
)

// Default single-word complaint markers, matched against whole tokens.
var defaultComplaintKeywords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "horrible": true,
	"disappointed": true, "poor": true, "worst": true, "unacceptable": true,
	"avoid": true, "waste": true, "ripoff": true,
}

// Default multi-word complaint markers, matched as substrings.
var defaultComplaintPhrases = []string{
	"not worth",
	"would not recommend",
	"stay away",
	"never coming back",
	"never again",
}

// ComplaintDetector flags review text containing complaint language.
// Detection is purely lexical: a review is a complaint when any keyword
// appears as a whole token or any phrase appears as a substring, after
// lowercasing. The zero-value detector is not usable; construct with
// NewComplaintDetector.
type ComplaintDetector struct {
	keywords map[string]bool
	phrases  []string
}

// DetectorOption customizes a ComplaintDetector.
type DetectorOption func(*ComplaintDetector)

// WithKeywords adds single-word markers to the default keyword set.
func WithKeywords(keywords ...string) DetectorOption {
	return func(d *ComplaintDetector) {
		for _, kw := range keywords {
			d.keywords[strings.ToLower(kw)] = true
		}
	}
}

// WithPhrases adds multi-word markers to the default phrase set.
func WithPhrases(phrases ...string) DetectorOption {
	return func(d *ComplaintDetector) {
		for _, p := range phrases {
			d.phrases = append(d.phrases, strings.ToLower(p))
		}
	}
}

// NewComplaintDetector creates a detector with the default lexicon,
// optionally extended.
func NewComplaintDetector(opts ...DetectorOption) *ComplaintDetector {
	d := &ComplaintDetector{
		keywords: maps.Clone(defaultComplaintKeywords),
		phrases:  append([]string{}, defaultComplaintPhrases...),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect reports whether the text contains complaint language.
func (d *ComplaintDetector) Detect(text string) bool {
	lowered := strings.ToLower(text)

	for _, token := range tokenize(text) {
		if d.keywords[token] {
			return true
		}
	}

	for _, phrase := range d.phrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}

	return false
}
