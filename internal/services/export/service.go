// Package export assembles a match's sport, teams and rosters from
// storage and runs them through the tagging formatter. The formatter
// itself never fails; the preconditions the UI used to enforce (team
// codes present, at least one valid player) are checked here instead.
package export

import (
	"context"
	"log/slog"

	"github.com/mvukas/rostertag/internal/captions"
	"github.com/mvukas/rostertag/internal/export"
	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/services/catalog"
	"github.com/mvukas/rostertag/internal/services/players"
)

// Service builds export artifacts for matches and teams
type Service struct {
	catalog *catalog.Service
	players *players.Service
	logger  *slog.Logger
}

// New creates a new export service
func New(catalogService *catalog.Service, playersService *players.Service, logger *slog.Logger) *Service {
	return &Service{
		catalog: catalogService,
		players: playersService,
		logger:  logger,
	}
}

// Artifact is a rendered export file
type Artifact struct {
	Filename string
	Content  string
}

// ForMatch renders the tagging file for every team of a match
func (s *Service) ForMatch(ctx context.Context, matchID model.MatchID) (Artifact, error) {
	match, err := s.catalog.GetMatch(ctx, matchID)
	if err != nil {
		return Artifact{}, err
	}
	sport, err := s.catalog.GetSport(ctx, match.SportID)
	if err != nil {
		return Artifact{}, err
	}
	teams, err := s.catalog.TeamsForMatch(ctx, matchID)
	if err != nil {
		return Artifact{}, err
	}
	if len(teams) == 0 {
		return Artifact{}, model.ErrTeamNotFound
	}

	teamPlayers, err := s.gather(ctx, teams)
	if err != nil {
		return Artifact{}, err
	}

	artifact := Artifact{
		Filename: export.MatchFilename(match, teamPlayers),
		Content:  export.TaggingText(sport, match, teamPlayers),
	}
	s.logger.Info("match exported",
		slog.String("match_id", string(matchID)),
		slog.String("filename", artifact.Filename),
	)
	return artifact, nil
}

// ForTeam renders the tagging file for a single team
func (s *Service) ForTeam(ctx context.Context, teamID model.TeamID) (Artifact, error) {
	team, err := s.catalog.GetTeam(ctx, teamID)
	if err != nil {
		return Artifact{}, err
	}
	match, err := s.catalog.GetMatch(ctx, team.MatchID)
	if err != nil {
		return Artifact{}, err
	}
	sport, err := s.catalog.GetSport(ctx, match.SportID)
	if err != nil {
		return Artifact{}, err
	}

	teamPlayers, err := s.gather(ctx, []model.Team{team})
	if err != nil {
		return Artifact{}, err
	}

	artifact := Artifact{
		Filename: export.TeamFilename(team),
		Content:  export.TaggingText(sport, match, teamPlayers),
	}
	s.logger.Info("team exported",
		slog.String("team_id", string(teamID)),
		slog.String("filename", artifact.Filename),
	)
	return artifact, nil
}

// Captions renders all agency caption strings for a match
func (s *Service) Captions(ctx context.Context, matchID model.MatchID) (captions.All, error) {
	match, err := s.catalog.GetMatch(ctx, matchID)
	if err != nil {
		return captions.All{}, err
	}
	teams, err := s.catalog.TeamsForMatch(ctx, matchID)
	if err != nil {
		return captions.All{}, err
	}
	return captions.ForMatch(match, teams), nil
}

// gather loads each team's roster and enforces the export preconditions:
// every team needs a code and at least one valid player overall.
func (s *Service) gather(ctx context.Context, teams []model.Team) ([]export.TeamPlayers, error) {
	teamPlayers := make([]export.TeamPlayers, len(teams))
	validCount := 0
	for i, team := range teams {
		if team.TeamCode == "" {
			return nil, model.ErrTeamCodeRequired
		}
		roster, err := s.players.List(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		for _, p := range roster {
			if p.Valid {
				validCount++
			}
		}
		teamPlayers[i] = export.TeamPlayers{Team: team, Players: roster}
	}
	if validCount == 0 {
		return nil, model.ErrNoValidPlayers
	}
	return teamPlayers, nil
}
