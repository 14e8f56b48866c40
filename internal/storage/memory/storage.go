package memory

import (
	"context"
	"sync"

	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sports  []model.Sport
	matches []model.Match
	teams   []model.Team
	players map[model.TeamID][]model.Player
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players: make(map[model.TeamID][]model.Player),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Sport operations

func (s *Storage) GetSports(ctx context.Context) ([]model.Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.sports), nil
}

func (s *Storage) SaveSports(ctx context.Context, sports []model.Sport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sports = copySlice(sports)
	return nil
}

// Match operations

func (s *Storage) GetMatches(ctx context.Context) ([]model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.matches), nil
}

func (s *Storage) SaveMatches(ctx context.Context, matches []model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = copySlice(matches)
	return nil
}

// Team operations

func (s *Storage) GetTeams(ctx context.Context) ([]model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.teams), nil
}

func (s *Storage) SaveTeams(ctx context.Context, teams []model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = copySlice(teams)
	return nil
}

// Player operations

func (s *Storage) GetPlayers(ctx context.Context, teamID model.TeamID) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.players[teamID]), nil
}

func (s *Storage) SavePlayers(ctx context.Context, teamID model.TeamID, players []model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[teamID] = copySlice(players)
	return nil
}

func (s *Storage) DeletePlayers(ctx context.Context, teamID model.TeamID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, teamID)
	return nil
}

// copySlice returns a non-nil copy so callers never share backing arrays
func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
