package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mvukas/rostertag/internal/dependencies/clock"
	"github.com/mvukas/rostertag/internal/dependencies/random"
	"github.com/mvukas/rostertag/internal/services/auth"
	"github.com/mvukas/rostertag/internal/services/catalog"
	exportsvc "github.com/mvukas/rostertag/internal/services/export"
	"github.com/mvukas/rostertag/internal/services/players"
	"github.com/mvukas/rostertag/internal/storage"
	filestorage "github.com/mvukas/rostertag/internal/storage/file"
	"github.com/mvukas/rostertag/internal/storage/memory"
	redisstorage "github.com/mvukas/rostertag/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeFile   = "file"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService    *auth.Service
	CatalogService *catalog.Service
	PlayersService *players.Service
	ExportService  *exportsvc.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// StorageType selects the storage backend ("memory", "file" or "redis")
	// If empty, defaults to "file"
	StorageType string
	// DataDir is the data directory for file storage (required for "file")
	DataDir string
	// RedisConfig holds Redis connection settings (required for "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeFile
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeFile:
		if cfg.DataDir == "" {
			return nil, errors.New("DataDir required when StorageType is file")
		}
		fileStore, err := filestorage.New(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'file' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg.SessionDuration = auth.DefaultConfig().SessionDuration
	}

	return newWithDependencies(store, clk, rnd, authCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, authCfg auth.Config, logger *slog.Logger) (*App, error) {
	authService, err := auth.New(clk, authCfg, logger)
	if err != nil {
		return nil, err
	}

	catalogService := catalog.New(store, clk, rnd, logger)
	playersService := players.New(store, rnd, logger)
	exportService := exportsvc.New(catalogService, playersService, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		AuthService:    authService,
		CatalogService: catalogService,
		PlayersService: playersService,
		ExportService:  exportService,
	}, nil
}
