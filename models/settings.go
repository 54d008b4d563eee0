package models

import "time"

// EventStatus values shown on the live display.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusLive      = "live"
	EventStatusCompleted = "completed"
)

// PointPair carries the point values of one position tier, split by item type.
type PointPair struct {
	Group      int `json:"group"`
	Individual int `json:"individual"`
}

// GradeConfig defines one grade of the grade system. Key is the stable
// identifier stored on grade entries; Label is display text.
type GradeConfig struct {
	Key              string `json:"key"`
	Label            string `json:"grade"`
	GroupPoints      int    `json:"groupPoints"`
	IndividualPoints int    `json:"individualPoints"`
}

// PointsConfig is the event's scoring configuration. Missing or non-positive
// values fall back to fixed defaults (see scoring.EffectiveConfig); the grade
// list defaults to empty.
type PointsConfig struct {
	First  PointPair     `json:"firstPlace"`
	Second PointPair     `json:"secondPlace"`
	Third  PointPair     `json:"thirdPlace"`
	Grades []GradeConfig `json:"grades,omitempty"`
}

// Settings is the single global settings document of the event. Versioned
// only by overwrite, no history.
type Settings struct {
	EventName         string       `json:"eventName"`
	EventStatus       string       `json:"eventStatus"`
	FlashNews         string       `json:"flashNews,omitempty"`
	TickerNews        []string     `json:"tickerNews"`
	AutoRotateEnabled bool         `json:"autoRotateEnabled"`
	RotationInterval  int          `json:"rotationInterval"`
	Points            PointsConfig `json:"pointsSystem"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
