package analysis

import (
	"sort"
	"strings"

	"github.com/poiesic/reviewlens/core"
)

// ThemeCount is a recurring phrase and the number of reviews-wide
// occurrences it was seen.
type ThemeCount struct {
	Phrase string
	Count  int
}

// TopThemes extracts the most frequent multi-word phrases across review
// texts. A phrase is a maximal run of two or more consecutive non-stop-word
// tokens. Results are ordered by count descending; ties keep first-seen
// order, so output is deterministic for a given review order.
func TopThemes(reviews []*core.Review, limit int) []ThemeCount {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	seq := 0

	for _, review := range reviews {
		for _, run := range contentRuns(review.Text) {
			if len(run) < 2 {
				continue
			}
			phrase := strings.Join(run, " ")
			if _, ok := counts[phrase]; !ok {
				firstSeen[phrase] = seq
				seq++
			}
			counts[phrase]++
		}
	}

	themes := make([]ThemeCount, 0, len(counts))
	for phrase, count := range counts {
		themes = append(themes, ThemeCount{Phrase: phrase, Count: count})
	}
	sort.Slice(themes, func(i, j int) bool {
		if themes[i].Count != themes[j].Count {
			return themes[i].Count > themes[j].Count
		}
		return firstSeen[themes[i].Phrase] < firstSeen[themes[j].Phrase]
	})

	if limit > 0 && len(themes) > limit {
		themes = themes[:limit]
	}
	return themes
}
