package analytics

import (
	"cmp"
	"math"
	"slices"

	"control-ads/internal/core/domain"
)

// MaxRanked caps every leaderboard.
const MaxRanked = 10

// rankKey orders contents by their authoritative cost; unmeasured contents
// sort last.
func rankKey(c domain.Content) float64 {
	if v := c.Cost(); v != nil {
		return *v
	}
	return math.Inf(1)
}

// Rank returns the contents of the given category, cheapest first, capped
// at MaxRanked. Ties keep input order.
func Rank(contents []domain.Content, category domain.Category) []domain.Content {
	ranked := make([]domain.Content, 0, len(contents))
	for _, c := range contents {
		if c.Category == category {
			ranked = append(ranked, c)
		}
	}
	slices.SortStableFunc(ranked, func(a, b domain.Content) int {
		return cmp.Compare(rankKey(a), rankKey(b))
	})
	if len(ranked) > MaxRanked {
		ranked = ranked[:MaxRanked]
	}
	return ranked
}

// BestCreatives partitions contents by category and ranks each partition.
// Every category is present in the result, possibly with an empty list.
func BestCreatives(contents []domain.Content) map[domain.Category][]domain.Content {
	out := make(map[domain.Category][]domain.Content, len(domain.Categories))
	for _, cat := range domain.Categories {
		out[cat] = Rank(contents, cat)
	}
	return out
}
