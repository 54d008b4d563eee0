package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artsfest/scoreboard/models"
)

var testNow = time.Date(2026, 2, 14, 18, 30, 0, 0, time.UTC)

func participant(id int, name string) models.Participant {
	return models.Participant{ID: id, Name: name, Active: true}
}

func groupItem(id int, title string, category int) models.CompetitionItem {
	return models.CompetitionItem{
		ID: id, Title: title, Category: models.RefTo(category),
		Type: models.ItemTypeGroup, Active: true,
	}
}

func individualItem(id int, title string, category int) models.CompetitionItem {
	item := groupItem(id, title, category)
	item.Type = models.ItemTypeIndividual
	return item
}

func gradedConfig() models.PointsConfig {
	return models.PointsConfig{
		Grades: []models.GradeConfig{
			{Key: "a", Label: "A", GroupPoints: 5, IndividualPoints: 3},
			{Key: "b", Label: "B", GroupPoints: 3, IndividualPoints: 2},
		},
	}
}

func TestEffectiveConfigDefaults(t *testing.T) {
	eff := EffectiveConfig(models.PointsConfig{})

	assert.Equal(t, models.PointPair{Group: 10, Individual: 5}, eff.First)
	assert.Equal(t, models.PointPair{Group: 5, Individual: 2}, eff.Second)
	assert.Equal(t, models.PointPair{Group: 1, Individual: 1}, eff.Third)
	assert.Empty(t, eff.Grades)
}

func TestEffectiveConfigPartialOverride(t *testing.T) {
	eff := EffectiveConfig(models.PointsConfig{
		First: models.PointPair{Group: 20},
	})

	// Configured value kept, missing half of the pair defaulted.
	assert.Equal(t, models.PointPair{Group: 20, Individual: 5}, eff.First)
	assert.Equal(t, models.PointPair{Group: 5, Individual: 2}, eff.Second)
}

func TestDefaultPoints(t *testing.T) {
	groupWin := groupItem(1, "Group Song", 1)
	groupWin.Results.First = models.RefTo(7)

	individualThird := individualItem(2, "Solo Recitation", 1)
	individualThird.Results.Third = models.RefTo(7)

	board := ComputeScoreboard(
		[]models.Participant{participant(7, "Red")},
		[]models.CompetitionItem{groupWin, individualThird},
		models.PointsConfig{},
		testNow,
	)

	require.Len(t, board.Entries, 1)
	assert.Equal(t, 11, board.Entries[0].Score) // 10 for first/group + 1 for third/individual
	assert.Equal(t, 1, board.Entries[0].Breakdown.First.Count)
	assert.Equal(t, 1, board.Entries[0].Breakdown.Third.Count)
	assert.Equal(t, testNow, board.LastUpdated)
}

func TestSumInvariant(t *testing.T) {
	itemA := groupItem(1, "Drama", 1)
	itemA.Results.First = models.RefTo(1)
	itemA.Results.Second = models.RefTo(2)
	itemA.Grades = []models.GradeEntry{{Participant: models.RefTo(3), Grade: "b"}}

	itemB := individualItem(2, "Essay", 1)
	itemB.Results.First = models.RefTo(2)
	itemB.Results.Third = models.RefTo(1)
	itemB.Grades = []models.GradeEntry{
		{Participant: models.RefTo(1), Grade: "a"},
		{Participant: models.RefTo(3), Grade: "a"},
	}

	board := ComputeScoreboard(
		[]models.Participant{participant(1, "Red"), participant(2, "Blue"), participant(3, "Green")},
		[]models.CompetitionItem{itemA, itemB},
		gradedConfig(),
		testNow,
	)

	for _, entry := range board.Entries {
		bd := entry.Breakdown
		positionSum := bd.First.Points.Total + bd.Second.Points.Total + bd.Third.Points.Total
		assert.Equal(t, bd.TotalPositionPoints, positionSum, "participant %s", entry.Name)

		gradeSum := 0
		for _, g := range bd.Grades {
			assert.Equal(t, g.Points.Total, g.Points.Group+g.Points.Individual)
			gradeSum += g.Points.Total
		}
		assert.Equal(t, bd.TotalGradePoints, gradeSum, "participant %s", entry.Name)
		assert.Equal(t, entry.Score, bd.TotalPositionPoints+bd.TotalGradePoints, "participant %s", entry.Name)
	}
}

func TestGradeAndPositionIndependence(t *testing.T) {
	itemX := groupItem(1, "Group Dance", 1)
	itemX.Results.First = models.RefTo(9)

	itemY := groupItem(2, "Choir", 1)
	itemY.Grades = []models.GradeEntry{{Participant: models.RefTo(9), Grade: "a"}}

	bd := ParticipantBreakdown(9, []models.CompetitionItem{itemX, itemY}, gradedConfig())

	assert.Equal(t, 10, bd.TotalPositionPoints)
	assert.Equal(t, 5, bd.TotalGradePoints)
	assert.Equal(t, 15, bd.Total)
	require.Len(t, bd.Grades, 1)
	assert.Equal(t, "A", bd.Grades[0].GradeLabel)
}

func TestPositionCheckOrderFirstWins(t *testing.T) {
	// Inconsistent data: the same participant in two slots of one item.
	item := groupItem(1, "Quiz", 1)
	item.Results.First = models.RefTo(4)
	item.Results.Second = models.RefTo(4)

	bd := ParticipantBreakdown(4, []models.CompetitionItem{item}, models.PointsConfig{})

	assert.Equal(t, 1, bd.First.Count)
	assert.Equal(t, 0, bd.Second.Count)
	assert.Equal(t, 10, bd.Total)
}

func TestGradeOnSameItemAsPosition(t *testing.T) {
	// The model does not forbid a placement and a grade on the same item;
	// both contribute.
	item := individualItem(1, "Calligraphy", 1)
	item.Results.Second = models.RefTo(5)
	item.Grades = []models.GradeEntry{{Participant: models.RefTo(5), Grade: "b"}}

	bd := ParticipantBreakdown(5, []models.CompetitionItem{item}, gradedConfig())

	assert.Equal(t, 2, bd.TotalPositionPoints)
	assert.Equal(t, 2, bd.TotalGradePoints)
	assert.Equal(t, 4, bd.Total)
}

func TestDuplicateGradeEntriesBothCount(t *testing.T) {
	item := groupItem(1, "Mime", 1)
	item.Grades = []models.GradeEntry{
		{Participant: models.RefTo(5), Grade: "a"},
		{Participant: models.RefTo(5), Grade: "a"},
	}

	bd := ParticipantBreakdown(5, []models.CompetitionItem{item}, gradedConfig())

	require.Len(t, bd.Grades, 1)
	assert.Equal(t, 2, bd.Grades[0].Count)
	assert.Equal(t, 10, bd.TotalGradePoints)
}

func TestUnknownGradeKeySkipped(t *testing.T) {
	item := groupItem(1, "Elocution", 1)
	item.Grades = []models.GradeEntry{{Participant: models.RefTo(5), Grade: "z"}}

	bd := ParticipantBreakdown(5, []models.CompetitionItem{item}, gradedConfig())

	assert.Empty(t, bd.Grades)
	assert.Zero(t, bd.Total)
}

func TestDanglingResultReferenceSkipped(t *testing.T) {
	item := groupItem(1, "Skit", 1)
	item.Results.First = models.RefTo(999) // no such participant

	board := ComputeScoreboard(
		[]models.Participant{participant(1, "Red")},
		[]models.CompetitionItem{item},
		models.PointsConfig{},
		testNow,
	)

	require.Len(t, board.Entries, 1)
	assert.Zero(t, board.Entries[0].Score)
}

func TestEmptyInputs(t *testing.T) {
	board := ComputeScoreboard(nil, nil, models.PointsConfig{}, testNow)
	assert.Empty(t, board.Entries)

	board = ComputeScoreboard(
		[]models.Participant{participant(1, "Red")},
		nil,
		models.PointsConfig{},
		testNow,
	)
	require.Len(t, board.Entries, 1)
	assert.Zero(t, board.Entries[0].Score)
}

func TestEngineDoesNotSort(t *testing.T) {
	item := groupItem(1, "Song", 1)
	item.Results.First = models.RefTo(2)

	board := ComputeScoreboard(
		[]models.Participant{participant(1, "Zero Points"), participant(2, "Winner")},
		[]models.CompetitionItem{item},
		models.PointsConfig{},
		testNow,
	)

	require.Len(t, board.Entries, 2)
	assert.Equal(t, "Zero Points", board.Entries[0].Name)
	assert.Equal(t, "Winner", board.Entries[1].Name)
}

func TestIdempotence(t *testing.T) {
	itemA := groupItem(1, "Drama", 1)
	itemA.Results.First = models.RefTo(1)
	itemA.Grades = []models.GradeEntry{{Participant: models.RefTo(2), Grade: "a"}}

	participants := []models.Participant{participant(1, "Red"), participant(2, "Blue")}
	items := []models.CompetitionItem{itemA}

	first := ComputeScoreboard(participants, items, gradedConfig(), testNow)
	second := ComputeScoreboard(participants, items, gradedConfig(), testNow)

	assert.Equal(t, first, second)
}
