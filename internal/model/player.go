package model

// PlayerID uniquely identifies a player within a roster
type PlayerID string

// ParsedPlayer is the output of the roster line parser before it is
// attached to a team. PlayerNumber is a string on purpose: it can be a
// jersey number ("7", "10") or a staff-role letter code ("A"), and the
// sort rule depends on string semantics.
type ParsedPlayer struct {
	PlayerNumber string `json:"player_number"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	RawInput     string `json:"raw_input"`
	Valid        bool   `json:"valid"`
}

// Player is a ParsedPlayer persisted into a team roster. TeamCode is a
// denormalized copy of the owning team's code at insertion/edit time.
// Players are never mutated in place; edits replace the value by ID.
type Player struct {
	ID           PlayerID `json:"id"`
	PlayerNumber string   `json:"player_number"`
	TeamCode     string   `json:"team_code"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	RawInput     string   `json:"raw_input"`
	Valid        bool     `json:"valid"`
}

// Parsed returns the parser-level view of a persisted player
func (p Player) Parsed() ParsedPlayer {
	return ParsedPlayer{
		PlayerNumber: p.PlayerNumber,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		RawInput:     p.RawInput,
		Valid:        p.Valid,
	}
}
