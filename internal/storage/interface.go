package storage

import (
	"context"

	"github.com/mvukas/rostertag/internal/model"
)

// Storage defines the interface for data persistence. Collections are
// loaded and saved whole, matching the single-operator last-write-wins
// model; players are stored one collection per team.
type Storage interface {
	// Sport operations
	GetSports(ctx context.Context) ([]model.Sport, error)
	SaveSports(ctx context.Context, sports []model.Sport) error

	// Match operations
	GetMatches(ctx context.Context) ([]model.Match, error)
	SaveMatches(ctx context.Context, matches []model.Match) error

	// Team operations
	GetTeams(ctx context.Context) ([]model.Team, error)
	SaveTeams(ctx context.Context, teams []model.Team) error

	// Player operations, keyed by owning team
	GetPlayers(ctx context.Context, teamID model.TeamID) ([]model.Player, error)
	SavePlayers(ctx context.Context, teamID model.TeamID, players []model.Player) error
	DeletePlayers(ctx context.Context, teamID model.TeamID) error
}
