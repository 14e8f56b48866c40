package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/storage"
)

// Data file names within the data directory
const (
	sportsFile  = "sports.json"
	matchesFile = "matches.json"
	teamsFile   = "teams.json"
)

// Storage persists collections as pretty-printed JSON files in a data
// directory, one file per collection and one players file per team. This
// matches the layout the desktop build reads and writes, so the server and
// desktop modes can share a data directory.
type Storage struct {
	mu  sync.Mutex
	dir string
}

// New creates a file storage rooted at dir, creating it if needed
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func playersFile(teamID model.TeamID) string {
	return fmt.Sprintf("players-%s.json", teamID)
}

// readJSON loads a collection file. A missing file is an empty
// collection, not an error.
func readJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []T{}, nil
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// writeJSON writes a collection via a temp file and rename, so a crashed
// write never leaves a truncated collection behind.
func writeJSON[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Sport operations

func (s *Storage) GetSports(ctx context.Context) ([]model.Sport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readJSON[model.Sport](filepath.Join(s.dir, sportsFile))
}

func (s *Storage) SaveSports(ctx context.Context, sports []model.Sport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, sportsFile), sports)
}

// Match operations

func (s *Storage) GetMatches(ctx context.Context) ([]model.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readJSON[model.Match](filepath.Join(s.dir, matchesFile))
}

func (s *Storage) SaveMatches(ctx context.Context, matches []model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, matchesFile), matches)
}

// Team operations

func (s *Storage) GetTeams(ctx context.Context) ([]model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readJSON[model.Team](filepath.Join(s.dir, teamsFile))
}

func (s *Storage) SaveTeams(ctx context.Context, teams []model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, teamsFile), teams)
}

// Player operations

func (s *Storage) GetPlayers(ctx context.Context, teamID model.TeamID) ([]model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readJSON[model.Player](filepath.Join(s.dir, playersFile(teamID)))
}

func (s *Storage) SavePlayers(ctx context.Context, teamID model.TeamID, players []model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(filepath.Join(s.dir, playersFile(teamID)), players)
}

func (s *Storage) DeletePlayers(ctx context.Context, teamID model.TeamID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(filepath.Join(s.dir, playersFile(teamID)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
