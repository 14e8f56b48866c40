// Package catalog manages the Sport -> Match -> Team hierarchy that
// rosters hang off. Collections are small and operator-owned, so writes
// replace the whole collection (last write wins) after validation.
package catalog

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/mvukas/rostertag/internal/dependencies/clock"
	"github.com/mvukas/rostertag/internal/dependencies/random"
	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/storage"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Service provides sport/match/team catalog operations
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new catalog service
func New(storage storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// Sport operations

// Sports lists all sports
func (s *Service) Sports(ctx context.Context) ([]model.Sport, error) {
	return s.storage.GetSports(ctx)
}

// GetSport returns one sport by ID
func (s *Service) GetSport(ctx context.Context, id model.SportID) (model.Sport, error) {
	sports, err := s.storage.GetSports(ctx)
	if err != nil {
		return model.Sport{}, err
	}
	for _, sport := range sports {
		if sport.ID == id {
			return sport, nil
		}
	}
	return model.Sport{}, model.ErrSportNotFound
}

// CreateSport adds a sport and returns it
func (s *Service) CreateSport(ctx context.Context, name string) (model.Sport, error) {
	if name == "" {
		return model.Sport{}, model.ErrSportNameRequired
	}

	sport := model.Sport{
		ID:        model.SportID(s.random.ID("sp_")),
		Name:      name,
		CreatedAt: s.clock.Now(),
	}

	sports, err := s.storage.GetSports(ctx)
	if err != nil {
		return model.Sport{}, err
	}
	if err := s.storage.SaveSports(ctx, append(sports, sport)); err != nil {
		return model.Sport{}, err
	}

	s.logger.Info("sport created", slog.String("sport_id", string(sport.ID)), slog.String("name", name))
	return sport, nil
}

// ReplaceSports validates and stores a full sports collection
func (s *Service) ReplaceSports(ctx context.Context, sports []model.Sport) error {
	for _, sport := range sports {
		if sport.Name == "" {
			return model.ErrSportNameRequired
		}
	}
	return s.storage.SaveSports(ctx, sports)
}

// Match operations

// Matches lists all matches
func (s *Service) Matches(ctx context.Context) ([]model.Match, error) {
	return s.storage.GetMatches(ctx)
}

// GetMatch returns one match by ID
func (s *Service) GetMatch(ctx context.Context, id model.MatchID) (model.Match, error) {
	matches, err := s.storage.GetMatches(ctx)
	if err != nil {
		return model.Match{}, err
	}
	for _, match := range matches {
		if match.ID == id {
			return match, nil
		}
	}
	return model.Match{}, model.ErrMatchNotFound
}

// NewMatch carries the operator-entered fields for a match
type NewMatch struct {
	SportID     model.SportID
	Date        string
	City        string
	Country     string
	Venue       string
	Description string
}

// CreateMatch adds a match and returns it
func (s *Service) CreateMatch(ctx context.Context, in NewMatch) (model.Match, error) {
	if in.SportID == "" {
		return model.Match{}, model.ErrMissingParentID
	}
	if !dateRe.MatchString(in.Date) {
		return model.Match{}, model.ErrInvalidMatchDate
	}
	if _, err := s.GetSport(ctx, in.SportID); err != nil {
		return model.Match{}, err
	}

	match := model.Match{
		ID:          model.MatchID(s.random.ID("m_")),
		SportID:     in.SportID,
		Date:        in.Date,
		City:        in.City,
		Country:     in.Country,
		Venue:       in.Venue,
		Description: in.Description,
		CreatedAt:   s.clock.Now(),
	}

	matches, err := s.storage.GetMatches(ctx)
	if err != nil {
		return model.Match{}, err
	}
	if err := s.storage.SaveMatches(ctx, append(matches, match)); err != nil {
		return model.Match{}, err
	}

	s.logger.Info("match created", slog.String("match_id", string(match.ID)), slog.String("date", match.Date))
	return match, nil
}

// ReplaceMatches validates and stores a full matches collection
func (s *Service) ReplaceMatches(ctx context.Context, matches []model.Match) error {
	for _, match := range matches {
		if match.SportID == "" {
			return model.ErrMissingParentID
		}
		if !dateRe.MatchString(match.Date) {
			return model.ErrInvalidMatchDate
		}
	}
	return s.storage.SaveMatches(ctx, matches)
}

// Team operations

// Teams lists all teams
func (s *Service) Teams(ctx context.Context) ([]model.Team, error) {
	return s.storage.GetTeams(ctx)
}

// TeamsForMatch lists the teams of one match, in stored order
func (s *Service) TeamsForMatch(ctx context.Context, matchID model.MatchID) ([]model.Team, error) {
	teams, err := s.storage.GetTeams(ctx)
	if err != nil {
		return nil, err
	}
	matchTeams := []model.Team{}
	for _, team := range teams {
		if team.MatchID == matchID {
			matchTeams = append(matchTeams, team)
		}
	}
	return matchTeams, nil
}

// GetTeam returns one team by ID
func (s *Service) GetTeam(ctx context.Context, id model.TeamID) (model.Team, error) {
	teams, err := s.storage.GetTeams(ctx)
	if err != nil {
		return model.Team{}, err
	}
	for _, team := range teams {
		if team.ID == id {
			return team, nil
		}
	}
	return model.Team{}, model.ErrTeamNotFound
}

// CreateTeam adds a team to a match and returns it
func (s *Service) CreateTeam(ctx context.Context, matchID model.MatchID, name, teamCode string) (model.Team, error) {
	if name == "" {
		return model.Team{}, model.ErrTeamNameRequired
	}
	if matchID == "" {
		return model.Team{}, model.ErrMissingParentID
	}
	if _, err := s.GetMatch(ctx, matchID); err != nil {
		return model.Team{}, err
	}

	team := model.Team{
		ID:        model.TeamID(s.random.ID("t_")),
		MatchID:   matchID,
		Name:      name,
		TeamCode:  teamCode,
		CreatedAt: s.clock.Now(),
	}

	teams, err := s.storage.GetTeams(ctx)
	if err != nil {
		return model.Team{}, err
	}
	if err := s.storage.SaveTeams(ctx, append(teams, team)); err != nil {
		return model.Team{}, err
	}

	s.logger.Info("team created",
		slog.String("team_id", string(team.ID)),
		slog.String("name", name),
		slog.String("team_code", teamCode),
	)
	return team, nil
}

// ReplaceTeams validates and stores a full teams collection
func (s *Service) ReplaceTeams(ctx context.Context, teams []model.Team) error {
	for _, team := range teams {
		if team.Name == "" {
			return model.ErrTeamNameRequired
		}
		if team.MatchID == "" {
			return model.ErrMissingParentID
		}
	}
	return s.storage.SaveTeams(ctx, teams)
}
