package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface,
// used when the server runs somewhere its data directory is not durable.
// Each collection is stored as one JSON blob under its own key, keeping
// the whole-array last-write-wins semantics of the file store.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// getCollection loads and decodes one collection key. A missing key is
// an empty collection.
func getCollection[T any](ctx context.Context, client *redis.Client, key string) ([]T, error) {
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []T{}, nil
		}
		return nil, err
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func saveCollection[T any](ctx context.Context, client *redis.Client, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, data, 0).Err()
}

// Sport operations

func (s *Storage) GetSports(ctx context.Context) ([]model.Sport, error) {
	return getCollection[model.Sport](ctx, s.client, sportsKey())
}

func (s *Storage) SaveSports(ctx context.Context, sports []model.Sport) error {
	return saveCollection(ctx, s.client, sportsKey(), sports)
}

// Match operations

func (s *Storage) GetMatches(ctx context.Context) ([]model.Match, error) {
	return getCollection[model.Match](ctx, s.client, matchesKey())
}

func (s *Storage) SaveMatches(ctx context.Context, matches []model.Match) error {
	return saveCollection(ctx, s.client, matchesKey(), matches)
}

// Team operations

func (s *Storage) GetTeams(ctx context.Context) ([]model.Team, error) {
	return getCollection[model.Team](ctx, s.client, teamsKey())
}

func (s *Storage) SaveTeams(ctx context.Context, teams []model.Team) error {
	return saveCollection(ctx, s.client, teamsKey(), teams)
}

// Player operations

func (s *Storage) GetPlayers(ctx context.Context, teamID model.TeamID) ([]model.Player, error) {
	return getCollection[model.Player](ctx, s.client, playersKey(teamID))
}

func (s *Storage) SavePlayers(ctx context.Context, teamID model.TeamID, players []model.Player) error {
	return saveCollection(ctx, s.client, playersKey(teamID), players)
}

func (s *Storage) DeletePlayers(ctx context.Context, teamID model.TeamID) error {
	return s.client.Del(ctx, playersKey(teamID)).Err()
}
