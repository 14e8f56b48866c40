// Package players manages per-team rosters: ingesting parsed paste text,
// editing entries, and the whole-roster swap and clean actions. Players
// are immutable values; every edit builds a replacement and stores the
// whole roster back.
package players

import (
	"context"
	"log/slog"
	"strings"

	"github.com/mvukas/rostertag/internal/dependencies/random"
	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/roster"
	"github.com/mvukas/rostertag/internal/storage"
)

// Service provides roster operations for one team at a time
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
}

// New creates a new players service
func New(storage storage.Storage, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  rnd,
		logger:  logger,
	}
}

// List returns a team's roster sorted by player number
func (s *Service) List(ctx context.Context, teamID model.TeamID) ([]model.Player, error) {
	players, err := s.storage.GetPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return roster.SortPlayers(players), nil
}

// Replace validates and stores a full roster for a team
func (s *Service) Replace(ctx context.Context, teamID model.TeamID, players []model.Player) error {
	if teamID == "" {
		return model.ErrNoTeamSelected
	}
	for _, p := range players {
		if p.LastName == "" {
			return model.ErrLastNameRequired
		}
	}
	return s.storage.SavePlayers(ctx, teamID, players)
}

// Delete removes a team's entire roster
func (s *Service) Delete(ctx context.Context, teamID model.TeamID) error {
	return s.storage.DeletePlayers(ctx, teamID)
}

// IngestText parses free-form roster text and appends the resulting
// players (valid and invalid alike) to the team's roster. The team code
// is denormalized onto each player at insertion time.
func (s *Service) IngestText(ctx context.Context, team model.Team, text string) ([]model.Player, error) {
	if team.ID == "" {
		return nil, model.ErrNoTeamSelected
	}

	parsed := roster.ParseText(text)
	added := make([]model.Player, len(parsed))
	for i, p := range parsed {
		added[i] = model.Player{
			ID:           model.PlayerID(s.random.ID("pl_")),
			PlayerNumber: p.PlayerNumber,
			TeamCode:     team.TeamCode,
			FirstName:    roster.CapitalizeWords(p.FirstName),
			LastName:     strings.ToUpper(p.LastName),
			RawInput:     p.RawInput,
			Valid:        p.Valid,
		}
	}

	existing, err := s.storage.GetPlayers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	updated := append(existing, added...)
	if err := s.storage.SavePlayers(ctx, team.ID, updated); err != nil {
		return nil, err
	}

	s.logger.Info("roster ingested",
		slog.String("team_id", string(team.ID)),
		slog.Int("added", len(added)),
		slog.Int("total", len(updated)),
	)
	return updated, nil
}

// Update replaces one player by ID, re-normalizing the name fields
func (s *Service) Update(ctx context.Context, teamID model.TeamID, player model.Player) ([]model.Player, error) {
	if player.LastName == "" {
		return nil, model.ErrLastNameRequired
	}

	existing, err := s.storage.GetPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	normalized := player
	normalized.FirstName = roster.CapitalizeWords(player.FirstName)
	normalized.LastName = strings.ToUpper(player.LastName)

	found := false
	updated := make([]model.Player, len(existing))
	for i, p := range existing {
		if p.ID == player.ID {
			updated[i] = normalized
			found = true
		} else {
			updated[i] = p
		}
	}
	if !found {
		return nil, model.ErrPlayerNotFound
	}

	if err := s.storage.SavePlayers(ctx, teamID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove deletes one player from the roster by ID
func (s *Service) Remove(ctx context.Context, teamID model.TeamID, playerID model.PlayerID) ([]model.Player, error) {
	existing, err := s.storage.GetPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	updated := make([]model.Player, 0, len(existing))
	for _, p := range existing {
		if p.ID != playerID {
			updated = append(updated, p)
		}
	}
	if len(updated) == len(existing) {
		return nil, model.ErrPlayerNotFound
	}

	if err := s.storage.SavePlayers(ctx, teamID, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// SwapNames exchanges first and last names across the whole roster,
// for team sheets pasted in "SURNAME Firstname" order.
func (s *Service) SwapNames(ctx context.Context, teamID model.TeamID) ([]model.Player, error) {
	existing, err := s.storage.GetPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	swapped := make([]model.Player, len(existing))
	for i, p := range existing {
		next := p
		next.FirstName = roster.CapitalizeWords(strings.ToLower(p.LastName))
		next.LastName = strings.ToUpper(p.FirstName)
		swapped[i] = next
	}

	if err := s.storage.SavePlayers(ctx, teamID, swapped); err != nil {
		return nil, err
	}
	return swapped, nil
}

// CleanNames strips diacritics from every player's name fields
func (s *Service) CleanNames(ctx context.Context, teamID model.TeamID) ([]model.Player, error) {
	existing, err := s.storage.GetPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	cleaned := make([]model.Player, len(existing))
	for i, p := range existing {
		next := p
		next.FirstName = roster.CapitalizeWords(roster.RemoveDiacritics(p.FirstName))
		next.LastName = strings.ToUpper(roster.RemoveDiacritics(p.LastName))
		cleaned[i] = next
	}

	if err := s.storage.SavePlayers(ctx, teamID, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}
