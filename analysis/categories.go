package analysis

import (
	"strings"

	"github.com/poiesic/reviewlens/core"
)

// Review categories, in match priority order. The first category whose
// marker appears in the text wins; reviews matching none fall to
// CategoryOther.
const (
	CategoryService  = "service"
	CategoryFood     = "food"
	CategoryAmbiance = "ambiance"
	CategoryPrice    = "price"
	CategoryOther    = "other"
)

// categoryOrder fixes the priority in which categories are checked.
var categoryOrder = []string{CategoryService, CategoryFood, CategoryAmbiance, CategoryPrice}

// categoryMarkers maps each category to the substrings that select it.
var categoryMarkers = map[string][]string{
	CategoryService:  {"service", "staff", "server", "waiter", "waitress"},
	CategoryFood:     {"food", "dish", "meal", "menu", "taste"},
	CategoryAmbiance: {"ambiance", "atmosphere", "decor", "music", "noise"},
	CategoryPrice:    {"price", "cost", "expensive", "cheap", "value"},
}

// Categorize assigns a single category to review text by substring matching
// against the lowercased text, checking categories in priority order.
func Categorize(text string) string {
	lowered := strings.ToLower(text)
	for _, category := range categoryOrder {
		for _, marker := range categoryMarkers[category] {
			if strings.Contains(lowered, marker) {
				return category
			}
		}
	}
	return CategoryOther
}

// CategorizeAll partitions reviews by category. Every category key is present
// in the result, mapping to a possibly empty slice; each review lands in
// exactly one bucket.
func CategorizeAll(reviews []*core.Review) map[string][]*core.Review {
	buckets := map[string][]*core.Review{
		CategoryService:  {},
		CategoryFood:     {},
		CategoryAmbiance: {},
		CategoryPrice:    {},
		CategoryOther:    {},
	}
	for _, review := range reviews {
		category := Categorize(review.Text)
		buckets[category] = append(buckets[category], review)
	}
	return buckets
}
