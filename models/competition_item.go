package models

import "time"

// ItemType distinguishes group items from individual items; the two carry
// different point values for the same position or grade.
type ItemType string

const (
	ItemTypeGroup      ItemType = "group"
	ItemTypeIndividual ItemType = "individual"
)

// ItemResults holds the top-three placements of an item. Each position
// references at most one participant. Nothing prevents inconsistent data
// (the same participant in two slots); consumers resolve that with a fixed
// First, Second, Third check order.
type ItemResults struct {
	First  Ref `json:"First"`
	Second Ref `json:"Second"`
	Third  Ref `json:"Third"`
}

// GradeEntry awards a grade (by key into the configured grade system) to a
// participant on one item. A participant should hold at most one grade per
// item; duplicates are a data anomaly the model does not prevent.
type GradeEntry struct {
	Participant Ref    `json:"participant"`
	Grade       string `json:"grade"`
}

// CompetitionItem is a single judged event of the festival.
type CompetitionItem struct {
	ID        int          `json:"id"`
	Title     string       `json:"title"`
	Category  Ref          `json:"category"`
	Type      ItemType     `json:"type"`
	Order     int          `json:"order"`
	Active    bool         `json:"active"`
	Results   ItemResults  `json:"results"`
	Grades    []GradeEntry `json:"grade,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
