package scoring

import (
	"sort"

	"github.com/artsfest/scoreboard/models"
)

// ItemPoints returns the points the participant earned on a single item:
// the position points resolved with the fixed First, Second, Third check
// order plus every matching grade entry. Zero when nothing matches.
func ItemPoints(participantID int, item models.CompetitionItem, cfg models.PointsConfig) int {
	eff := EffectiveConfig(cfg)
	gradeByKey := make(map[string]models.GradeConfig, len(eff.Grades))
	for _, g := range eff.Grades {
		gradeByKey[g.Key] = g
	}
	return itemPoints(participantID, item, eff, gradeByKey)
}

func itemPoints(participantID int, item models.CompetitionItem, eff models.PointsConfig, gradeByKey map[string]models.GradeConfig) int {
	points := 0

	switch {
	case item.Results.First.Matches(participantID):
		points += pairValue(eff.First, item.Type)
	case item.Results.Second.Matches(participantID):
		points += pairValue(eff.Second, item.Type)
	case item.Results.Third.Matches(participantID):
		points += pairValue(eff.Third, item.Type)
	}

	for _, entry := range item.Grades {
		if entry.Grade == "" || !entry.Participant.Matches(participantID) {
			continue
		}
		if gc, ok := gradeByKey[entry.Grade]; ok {
			points += gradeValue(gc, item.Type)
		}
	}

	return points
}

// BuildPivotTables produces one participant × item points matrix per
// category. Categories come out in their configured order and the items of a
// category, in their configured order, form the header sequence. Rows are
// sorted descending by total (the table's own internal ranking, independent
// of the global scoreboard).
//
// Policies for data the model does not constrain: a category with zero items
// is omitted from the output; an item is attributed to the first category in
// category order whose id matches its reference; an item whose reference
// matches no known category appears in no table.
func BuildPivotTables(categories []models.Category, items []models.CompetitionItem, participants []models.Participant, cfg models.PointsConfig) []models.PivotTable {
	eff := EffectiveConfig(cfg)
	gradeByKey := make(map[string]models.GradeConfig, len(eff.Grades))
	for _, g := range eff.Grades {
		gradeByKey[g.Key] = g
	}

	orderedCategories := make([]models.Category, len(categories))
	copy(orderedCategories, categories)
	sort.SliceStable(orderedCategories, func(i, j int) bool {
		return orderedCategories[i].Order < orderedCategories[j].Order
	})

	claimed := make(map[int]bool, len(items))
	tables := make([]models.PivotTable, 0, len(orderedCategories))

	for _, category := range orderedCategories {
		var categoryItems []models.CompetitionItem
		for _, item := range items {
			if claimed[item.ID] {
				continue
			}
			if item.Category.Matches(category.ID) {
				claimed[item.ID] = true
				categoryItems = append(categoryItems, item)
			}
		}
		if len(categoryItems) == 0 {
			continue
		}
		sort.SliceStable(categoryItems, func(i, j int) bool {
			return categoryItems[i].Order < categoryItems[j].Order
		})

		headers := make([]string, len(categoryItems))
		for i, item := range categoryItems {
			headers[i] = item.Title
		}

		rows := make([]models.PivotRow, 0, len(participants))
		for _, p := range participants {
			values := make([]int, len(categoryItems))
			total := 0
			for i, item := range categoryItems {
				values[i] = itemPoints(p.ID, item, eff, gradeByKey)
				total += values[i]
			}
			rows = append(rows, models.PivotRow{Label: p.Name, Values: values, Total: total})
		}
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })

		tables = append(tables, models.PivotTable{
			Title:   category.Name,
			Headers: headers,
			Rows:    rows,
		})
	}

	return tables
}
