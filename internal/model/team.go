package model

import "time"

// TeamID uniquely identifies a team
type TeamID string

// Team is one side of a match. TeamCode is the short tagging prefix
// (e.g. "HRV") that gets prepended to player numbers in export output.
type Team struct {
	ID        TeamID    `json:"id"`
	MatchID   MatchID   `json:"match_id"`
	Name      string    `json:"name"`
	TeamCode  string    `json:"team_code"`
	Logo      string    `json:"logo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
