package redis

import (
	"fmt"

	"github.com/mvukas/rostertag/internal/model"
)

// Key prefix for all roster data
const keyPrefix = "rostertag"

// Key generation functions for each collection

func sportsKey() string {
	return fmt.Sprintf("%s:sports", keyPrefix)
}

func matchesKey() string {
	return fmt.Sprintf("%s:matches", keyPrefix)
}

func teamsKey() string {
	return fmt.Sprintf("%s:teams", keyPrefix)
}

func playersKey(teamID model.TeamID) string {
	return fmt.Sprintf("%s:players:%s", keyPrefix, teamID)
}
