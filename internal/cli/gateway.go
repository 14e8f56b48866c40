package cli

import (
	"context"
	"fmt"

	"github.com/mvukas/rostertag/internal/captions"
	"github.com/mvukas/rostertag/internal/factory"
	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/roster"
	"github.com/mvukas/rostertag/internal/services/auth"
)

// Gateway abstracts where roster data lives: a running server reached
// over HTTP, or a local file store when no server is reachable.
type Gateway interface {
	Sports(ctx context.Context) ([]model.Sport, error)
	SaveSports(ctx context.Context, sports []model.Sport) error
	Matches(ctx context.Context) ([]model.Match, error)
	SaveMatches(ctx context.Context, matches []model.Match) error
	Teams(ctx context.Context) ([]model.Team, error)
	SaveTeams(ctx context.Context, teams []model.Team) error
	Players(ctx context.Context, teamID model.TeamID) ([]model.Player, error)
	SavePlayers(ctx context.Context, teamID model.TeamID, players []model.Player) error
	DeletePlayers(ctx context.Context, teamID model.TeamID) error
	SwapNames(ctx context.Context, teamID model.TeamID) ([]model.Player, error)
	CleanNames(ctx context.Context, teamID model.TeamID) ([]model.Player, error)
	Parse(ctx context.Context, text string, filter bool) ([]model.ParsedPlayer, error)
	ExportMatch(ctx context.Context, matchID model.MatchID) (ExportResult, error)
	ExportTeam(ctx context.Context, teamID model.TeamID) (ExportResult, error)
	Captions(ctx context.Context, matchID model.MatchID) (captions.All, error)
}

// newGateway picks the backing store for this invocation. A reachable
// server wins; otherwise commands run against the local data directory,
// the same way the desktop build works without a server.
func newGateway(cfg *Config, client *Client) (Gateway, error) {
	if !cfg.Local && client.Ping() {
		return &remoteGateway{client: client}, nil
	}

	if cfg.Verbose && !cfg.Local {
		fmt.Printf("server %s unreachable, using local data dir %s\n", cfg.ServerURL, cfg.DataDir)
	}

	app, err := factory.New(factory.Config{
		StorageType: factory.StorageTypeFile,
		DataDir:     cfg.DataDir,
		AuthConfig:  auth.Config{TrustedMode: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	return &localGateway{app: app}, nil
}

// remoteGateway talks to the HTTP API.
type remoteGateway struct {
	client *Client
}

var _ Gateway = (*remoteGateway)(nil)

func (g *remoteGateway) Sports(_ context.Context) ([]model.Sport, error) {
	var sports []model.Sport
	if err := g.client.Get("/api/sports", &sports); err != nil {
		return nil, err
	}
	return sports, nil
}

func (g *remoteGateway) SaveSports(_ context.Context, sports []model.Sport) error {
	return g.client.Post("/api/sports", sports, nil)
}

func (g *remoteGateway) Matches(_ context.Context) ([]model.Match, error) {
	var matches []model.Match
	if err := g.client.Get("/api/matches", &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (g *remoteGateway) SaveMatches(_ context.Context, matches []model.Match) error {
	return g.client.Post("/api/matches", matches, nil)
}

func (g *remoteGateway) Teams(_ context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := g.client.Get("/api/teams", &teams); err != nil {
		return nil, err
	}
	return teams, nil
}

func (g *remoteGateway) SaveTeams(_ context.Context, teams []model.Team) error {
	return g.client.Post("/api/teams", teams, nil)
}

func (g *remoteGateway) Players(_ context.Context, teamID model.TeamID) ([]model.Player, error) {
	var players []model.Player
	if err := g.client.Get("/api/players/"+string(teamID), &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (g *remoteGateway) SavePlayers(_ context.Context, teamID model.TeamID, players []model.Player) error {
	return g.client.Post("/api/players/"+string(teamID), players, nil)
}

func (g *remoteGateway) DeletePlayers(_ context.Context, teamID model.TeamID) error {
	return g.client.Delete("/api/players/" + string(teamID))
}

func (g *remoteGateway) SwapNames(_ context.Context, teamID model.TeamID) ([]model.Player, error) {
	var players []model.Player
	if err := g.client.Post("/api/players/"+string(teamID)+"/swap", nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (g *remoteGateway) CleanNames(_ context.Context, teamID model.TeamID) ([]model.Player, error) {
	var players []model.Player
	if err := g.client.Post("/api/players/"+string(teamID)+"/clean", nil, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (g *remoteGateway) Parse(_ context.Context, text string, filter bool) ([]model.ParsedPlayer, error) {
	req := map[string]any{"text": text, "filter": filter}
	var parsed []model.ParsedPlayer
	if err := g.client.Post("/api/parse", req, &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func (g *remoteGateway) ExportMatch(_ context.Context, matchID model.MatchID) (ExportResult, error) {
	var result ExportResult
	if err := g.client.Get("/api/export/"+string(matchID)+"?format=json", &result); err != nil {
		return ExportResult{}, err
	}
	return result, nil
}

func (g *remoteGateway) ExportTeam(_ context.Context, teamID model.TeamID) (ExportResult, error) {
	var result ExportResult
	if err := g.client.Get("/api/export/team/"+string(teamID)+"?format=json", &result); err != nil {
		return ExportResult{}, err
	}
	return result, nil
}

func (g *remoteGateway) Captions(_ context.Context, matchID model.MatchID) (captions.All, error) {
	var result captions.All
	if err := g.client.Get("/api/captions/"+string(matchID), &result); err != nil {
		return captions.All{}, err
	}
	return result, nil
}

// localGateway runs the services in-process against file storage.
type localGateway struct {
	app *factory.App
}

var _ Gateway = (*localGateway)(nil)

func (g *localGateway) Sports(ctx context.Context) ([]model.Sport, error) {
	return g.app.CatalogService.Sports(ctx)
}

func (g *localGateway) SaveSports(ctx context.Context, sports []model.Sport) error {
	return g.app.CatalogService.ReplaceSports(ctx, sports)
}

func (g *localGateway) Matches(ctx context.Context) ([]model.Match, error) {
	return g.app.CatalogService.Matches(ctx)
}

func (g *localGateway) SaveMatches(ctx context.Context, matches []model.Match) error {
	return g.app.CatalogService.ReplaceMatches(ctx, matches)
}

func (g *localGateway) Teams(ctx context.Context) ([]model.Team, error) {
	return g.app.CatalogService.Teams(ctx)
}

func (g *localGateway) SaveTeams(ctx context.Context, teams []model.Team) error {
	return g.app.CatalogService.ReplaceTeams(ctx, teams)
}

func (g *localGateway) Players(ctx context.Context, teamID model.TeamID) ([]model.Player, error) {
	return g.app.PlayersService.List(ctx, teamID)
}

func (g *localGateway) SavePlayers(ctx context.Context, teamID model.TeamID, players []model.Player) error {
	return g.app.PlayersService.Replace(ctx, teamID, players)
}

func (g *localGateway) DeletePlayers(ctx context.Context, teamID model.TeamID) error {
	return g.app.PlayersService.Delete(ctx, teamID)
}

func (g *localGateway) SwapNames(ctx context.Context, teamID model.TeamID) ([]model.Player, error) {
	return g.app.PlayersService.SwapNames(ctx, teamID)
}

func (g *localGateway) CleanNames(ctx context.Context, teamID model.TeamID) ([]model.Player, error) {
	return g.app.PlayersService.CleanNames(ctx, teamID)
}

func (g *localGateway) Parse(_ context.Context, text string, filter bool) ([]model.ParsedPlayer, error) {
	if filter {
		text = roster.FilterCandidateLines(text)
	}
	return roster.ParseText(text), nil
}

func (g *localGateway) ExportMatch(ctx context.Context, matchID model.MatchID) (ExportResult, error) {
	artifact, err := g.app.ExportService.ForMatch(ctx, matchID)
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{Filename: artifact.Filename, Content: artifact.Content}, nil
}

func (g *localGateway) ExportTeam(ctx context.Context, teamID model.TeamID) (ExportResult, error) {
	artifact, err := g.app.ExportService.ForTeam(ctx, teamID)
	if err != nil {
		return ExportResult{}, err
	}
	return ExportResult{Filename: artifact.Filename, Content: artifact.Content}, nil
}

func (g *localGateway) Captions(ctx context.Context, matchID model.MatchID) (captions.All, error) {
	return g.app.ExportService.Captions(ctx, matchID)
}
