package scoring

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsfest/scoreboard/models"
)

func pivotFixture() ([]models.Category, []models.CompetitionItem, []models.Participant) {
	categories := []models.Category{
		{ID: 2, Name: "Juniors", Order: 1},
		{ID: 1, Name: "Kids", Order: 0},
	}

	song := groupItem(10, "Group Song", 1)
	song.Order = 1
	song.Results.First = models.RefTo(1)
	song.Results.Second = models.RefTo(2)

	recitation := individualItem(11, "Recitation", 1)
	recitation.Order = 0
	recitation.Results.First = models.RefTo(2)

	essay := individualItem(12, "Essay", 2)
	essay.Results.Third = models.RefTo(1)
	essay.Grades = []models.GradeEntry{{Participant: models.RefTo(2), Grade: "a"}}

	participants := []models.Participant{
		participant(1, "Red House"),
		participant(2, "Blue House"),
	}

	return categories, []models.CompetitionItem{song, recitation, essay}, participants
}

func TestBuildPivotTables(t *testing.T) {
	categories, items, participants := pivotFixture()

	tables := BuildPivotTables(categories, items, participants, gradedConfig())
	require.Len(t, tables, 2)

	// Categories come out in configured order, items in theirs.
	kids := tables[0]
	assert.Equal(t, "Kids", kids.Title)
	assert.Equal(t, []string{"Recitation", "Group Song"}, kids.Headers)

	// Rows sorted descending by total: Blue 5+5=10, Red 10.
	// Equal totals keep participant input order (stable sort).
	require.Len(t, kids.Rows, 2)
	assert.Equal(t, "Red House", kids.Rows[0].Label)
	assert.Equal(t, []int{0, 10}, kids.Rows[0].Values)
	assert.Equal(t, "Blue House", kids.Rows[1].Label)
	assert.Equal(t, []int{5, 5}, kids.Rows[1].Values)

	juniors := tables[1]
	assert.Equal(t, "Juniors", juniors.Title)
	assert.Equal(t, []string{"Essay"}, juniors.Headers)
	assert.Equal(t, "Blue House", juniors.Rows[0].Label) // grade "a" individual = 3
	assert.Equal(t, 3, juniors.Rows[0].Total)
	assert.Equal(t, "Red House", juniors.Rows[1].Label) // third individual = 1
	assert.Equal(t, 1, juniors.Rows[1].Total)
}

func TestPivotRowInvariant(t *testing.T) {
	categories, items, participants := pivotFixture()

	for _, table := range BuildPivotTables(categories, items, participants, gradedConfig()) {
		for _, row := range table.Rows {
			require.Len(t, row.Values, len(table.Headers))
			sum := 0
			for _, v := range row.Values {
				sum += v
			}
			assert.Equal(t, row.Total, sum, "row %s of %s", row.Label, table.Title)
		}
	}
}

func TestPivotEmptyCategoryOmitted(t *testing.T) {
	categories := []models.Category{
		{ID: 1, Name: "Kids", Order: 0},
		{ID: 2, Name: "Seniors", Order: 1}, // no items
	}
	item := groupItem(1, "Song", 1)

	tables := BuildPivotTables(categories, []models.CompetitionItem{item},
		[]models.Participant{participant(1, "Red")}, models.PointsConfig{})

	require.Len(t, tables, 1)
	assert.Equal(t, "Kids", tables[0].Title)
}

func TestPivotDanglingCategoryExcluded(t *testing.T) {
	categories := []models.Category{{ID: 1, Name: "Kids", Order: 0}}
	orphan := groupItem(1, "Song", 99)

	tables := BuildPivotTables(categories, []models.CompetitionItem{orphan},
		[]models.Participant{participant(1, "Red")}, models.PointsConfig{})

	assert.Empty(t, tables)
}

func TestItemPoints(t *testing.T) {
	item := groupItem(1, "Drama", 1)
	item.Results.First = models.RefTo(3)
	item.Grades = []models.GradeEntry{{Participant: models.RefTo(3), Grade: "b"}}

	assert.Equal(t, 13, ItemPoints(3, item, gradedConfig())) // 10 + grade b group 3
	assert.Equal(t, 0, ItemPoints(4, item, gradedConfig()))
}

func TestLooseIDMatching(t *testing.T) {
	// Upstream references arrive as raw numbers, strings, or expanded
	// objects depending on query depth; all three must score the same.
	raw := `{
		"id": 1, "title": "Song", "category": {"id": 1, "name": "Kids"},
		"type": "group", "order": 0, "active": true,
		"results": {"First": "7", "Second": {"id": 8}, "Third": 9}
	}`
	var item models.CompetitionItem
	require.NoError(t, json.Unmarshal([]byte(raw), &item))

	cfg := models.PointsConfig{}
	assert.Equal(t, 10, ItemPoints(7, item, cfg))
	assert.Equal(t, 5, ItemPoints(8, item, cfg))
	assert.Equal(t, 1, ItemPoints(9, item, cfg))

	categories := []models.Category{{ID: 1, Name: "Kids", Order: 0}}
	tables := BuildPivotTables(categories, []models.CompetitionItem{item},
		[]models.Participant{participant(7, "Red")}, cfg)
	require.Len(t, tables, 1)
}

func TestPivotTablesGolden(t *testing.T) {
	categories, items, participants := pivotFixture()
	tables := BuildPivotTables(categories, items, participants, gradedConfig())

	g := goldie.New(t, goldie.WithNameSuffix(".golden"))
	g.AssertJson(t, "pivot_tables", tables)
}
