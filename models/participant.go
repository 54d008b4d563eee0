package models

import "time"

// Participant is a competing team/house of the event. It is created and
// edited by administrators only; the scoring engine never mutates it and
// attaches computed scores in a derived view instead.
type Participant struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	ShortCode string    `json:"shortCode,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
