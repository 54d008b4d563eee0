package models

import "time"

// Category groups competition items (e.g. Kids, Juniors, Seniors). Order
// controls the position of the category's pivot table in combined views.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
