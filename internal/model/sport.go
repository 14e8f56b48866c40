package model

import "time"

// SportID uniquely identifies a sport across the system
type SportID string

// Sport is the top-level grouping for matches
type Sport struct {
	ID        SportID   `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
