package models

import "time"

// Derived types. Nothing in this file is persisted; everything is recomputed
// from the current records on every request.

// TypeCount counts occurrences split by item type.
type TypeCount struct {
	Group      int `json:"group"`
	Individual int `json:"individual"`
}

// TypePoints accumulates points split by item type.
type TypePoints struct {
	Group      int `json:"group"`
	Individual int `json:"individual"`
	Total      int `json:"total"`
}

// PositionBreakdown aggregates one position tier for one participant.
type PositionBreakdown struct {
	Count  int        `json:"count"`
	ByType TypeCount  `json:"byType"`
	Points TypePoints `json:"points"`
}

// GradeBreakdown aggregates one grade for one participant.
type GradeBreakdown struct {
	Grade      string     `json:"grade"`
	GradeLabel string     `json:"gradeLabel"`
	Count      int        `json:"count"`
	ByType     TypeCount  `json:"byType"`
	Points     TypePoints `json:"points"`
}

// ScoreBreakdown is the full per-participant account of where a score came
// from. Invariant: TotalPositionPoints + TotalGradePoints == Total.
type ScoreBreakdown struct {
	First               PositionBreakdown `json:"first"`
	Second              PositionBreakdown `json:"second"`
	Third               PositionBreakdown `json:"third"`
	TotalPositionPoints int               `json:"totalPositionPoints"`
	Grades              []GradeBreakdown  `json:"grades"`
	TotalGradePoints    int               `json:"totalGradePoints"`
	Total               int               `json:"total"`
}

// ScoreboardEntry is a participant with its computed score attached.
type ScoreboardEntry struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	ShortCode string         `json:"shortCode,omitempty"`
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Scoreboard is the derived overall standing of the event. Entries keep the
// input participant order; ranking and sorting are a separate concern.
type Scoreboard struct {
	Entries     []ScoreboardEntry `json:"participants"`
	Points      PointsConfig      `json:"pointsConfig"`
	LastUpdated time.Time         `json:"lastUpdated"`
}

// PivotRow is one participant's line in a category pivot table. Invariant:
// sum(Values) == Total.
type PivotRow struct {
	Label  string `json:"label"`
	Values []int  `json:"values"`
	Total  int    `json:"total"`
}

// PivotTable is the participant × item points matrix of one category.
type PivotTable struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    []PivotRow `json:"rows"`
}
