package analysis

import "strings"

// Stop words filtered out of theme extraction
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "were": true, "to": true, "of": true, "and": true, "in": true,
	"that": true, "have": true, "had": true, "it": true, "for": true,
	"not": true, "on": true, "with": true, "as": true, "you": true, "do": true,
	"at": true, "this": true, "but": true, "by": true, "from": true,
	"so": true, "we": true, "i": true, "my": true, "our": true, "very": true,
}

// cleanWord lowercases a word and trims surrounding punctuation.
func cleanWord(word string) string {
	return strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))
}

// tokenize splits text into lowercased, punctuation-trimmed words.
// Stop words are kept; empty tokens are dropped.
func tokenize(text string) []string {
	words := strings.Fields(text)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if cleaned := cleanWord(word); cleaned != "" {
			tokens = append(tokens, cleaned)
		}
	}
	return tokens
}

// contentRuns returns the maximal runs of consecutive non-stop-word tokens
// in the text. Stop words act as run separators and never appear in output.
func contentRuns(text string) [][]string {
	tokens := tokenize(text)
	runs := [][]string{}
	var current []string
	for _, token := range tokens {
		if stopWords[token] {
			if len(current) > 0 {
				runs = append(runs, current)
				current = nil
			}
			continue
		}
		current = append(current, token)
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}
