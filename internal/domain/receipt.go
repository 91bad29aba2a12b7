package domain

import "time"

// Receipt is the record of a completed checkout. It is returned to the caller
// once and not retained server-side.
type Receipt struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Total     float64    `json:"total"`
	Timestamp time.Time  `json:"timestamp"`
	Items     []CartLine `json:"items"`
}
