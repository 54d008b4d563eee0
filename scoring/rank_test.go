package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scored struct {
	Name  string
	Score int
}

func TestRankTieVector(t *testing.T) {
	items := []scored{
		{"a", 100}, {"b", 100}, {"c", 90}, {"d", 80}, {"e", 80}, {"f", 70},
	}

	ranked := Rank(items, func(s scored) int { return s.Score })
	require.Len(t, ranked, 6)

	wantRanks := []int{1, 1, 3, 4, 4, 6}
	wantDisplay := []string{"T-1st", "T-1st", "3rd", "T-4th", "T-4th", "6th"}
	wantTied := []bool{true, true, false, true, true, false}

	for i, r := range ranked {
		assert.Equal(t, wantRanks[i], r.Rank, "rank at %d", i)
		assert.Equal(t, wantDisplay[i], r.DisplayRank, "display at %d", i)
		assert.Equal(t, wantTied[i], r.IsTied, "tied at %d", i)
	}
}

func TestRankMonotonicAndPure(t *testing.T) {
	items := []scored{{"a", 5}, {"b", 42}, {"c", 17}, {"d", 42}, {"e", 0}}
	original := make([]scored, len(items))
	copy(original, items)

	first := Rank(items, func(s scored) int { return s.Score })
	second := Rank(items, func(s scored) int { return s.Score })

	// Re-entrant: identical output, input untouched.
	assert.Equal(t, first, second)
	assert.Equal(t, original, items)

	for i := 1; i < len(first); i++ {
		assert.LessOrEqual(t, first[i-1].Rank, first[i].Rank)
		assert.GreaterOrEqual(t, first[i-1].Item.Score, first[i].Item.Score)
	}
}

func TestRankStableForEqualScores(t *testing.T) {
	items := []scored{{"first-in", 10}, {"second-in", 10}}
	ranked := Rank(items, func(s scored) int { return s.Score })
	require.Len(t, ranked, 2)
	assert.Equal(t, "first-in", ranked[0].Item.Name)
	assert.Equal(t, "second-in", ranked[1].Item.Name)
}

func TestRankEmpty(t *testing.T) {
	ranked := Rank([]scored(nil), func(s scored) int { return s.Score })
	assert.Empty(t, ranked)
}

func TestFormatRank(t *testing.T) {
	cases := map[int]string{
		1:   "1st",
		2:   "2nd",
		3:   "3rd",
		4:   "4th",
		10:  "10th",
		11:  "11th",
		12:  "12th",
		13:  "13th",
		21:  "21st",
		22:  "22nd",
		23:  "23rd",
		101: "101st",
		111: "111th",
	}
	for rank, want := range cases {
		assert.Equal(t, want, FormatRank(rank, false), "rank %d", rank)
	}

	assert.Equal(t, "T-1st", FormatRank(1, true))
	assert.Equal(t, "T-13th", FormatRank(13, true))
}
