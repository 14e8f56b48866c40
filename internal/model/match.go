package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// Match describes one sporting event. Date is kept as an ISO "YYYY-MM-DD"
// string because it is entered and validated at the form edge; callers that
// need a time.Time parse it themselves.
type Match struct {
	ID          MatchID   `json:"id"`
	SportID     SportID   `json:"sport_id"`
	Date        string    `json:"date"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
