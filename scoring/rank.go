package scoring

import (
	"sort"
	"strconv"
)

// Ranked wraps an entity with its computed rank for display.
type Ranked[T any] struct {
	Item        T      `json:"item"`
	Rank        int    `json:"rank"`
	DisplayRank string `json:"displayRank"`
	IsTied      bool   `json:"isTied"`
}

// Rank sorts descending by score and assigns competition ("1224") ranks:
// equal scores share a rank and the next distinct score takes its 1-based
// position in the sorted order, so ranks skip over tied competitors.
//
// Scores [100, 100, 90] yield ranks [1, 1, 3] and display ranks
// ["T-1st", "T-1st", "3rd"]. The input slice is not modified.
func Rank[T any](items []T, score func(T) int) []Ranked[T] {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return score(sorted[i]) > score(sorted[j]) })

	ranked := make([]Ranked[T], 0, len(sorted))
	rank := 1
	for i := range sorted {
		current := score(sorted[i])
		if i > 0 && current < score(sorted[i-1]) {
			rank = i + 1
		}
		tied := (i > 0 && score(sorted[i-1]) == current) ||
			(i+1 < len(sorted) && score(sorted[i+1]) == current)

		ranked = append(ranked, Ranked[T]{
			Item:        sorted[i],
			Rank:        rank,
			DisplayRank: FormatRank(rank, tied),
			IsTied:      tied,
		})
	}
	return ranked
}

// FormatRank renders a rank as its ordinal ("1st", "2nd", "11th"), prefixed
// with "T-" when the rank is shared.
func FormatRank(rank int, tied bool) string {
	s := strconv.Itoa(rank) + rankSuffix(rank)
	if tied {
		return "T-" + s
	}
	return s
}

func rankSuffix(rank int) string {
	if r := rank % 100; r >= 11 && r <= 13 {
		return "th"
	}
	switch rank % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
