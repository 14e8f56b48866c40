package model

import "errors"

// Common errors used across the application
var (
	// Catalog errors
	ErrSportNotFound = errors.New("sport not found")
	ErrMatchNotFound = errors.New("match not found")
	ErrTeamNotFound  = errors.New("team not found")

	// Roster errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNoTeamSelected = errors.New("no team selected")

	// Validation errors
	ErrSportNameRequired = errors.New("sport name is required")
	ErrTeamNameRequired  = errors.New("team name is required")
	ErrTeamCodeRequired  = errors.New("team code is required")
	ErrLastNameRequired  = errors.New("player last name is required")
	ErrInvalidMatchDate  = errors.New("match date must be in YYYY-MM-DD format")
	ErrMissingParentID   = errors.New("parent reference id is required")
	ErrNoValidPlayers    = errors.New("no valid players to export")
)
