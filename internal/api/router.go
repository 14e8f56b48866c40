package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mvukas/rostertag/internal/api/handler"
	"github.com/mvukas/rostertag/internal/api/middleware"
	"github.com/mvukas/rostertag/internal/services/auth"
	"github.com/mvukas/rostertag/internal/services/catalog"
	exportsvc "github.com/mvukas/rostertag/internal/services/export"
	"github.com/mvukas/rostertag/internal/services/players"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	CatalogService *catalog.Service
	PlayersService *players.Service
	ExportService  *exportsvc.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	catalogHandler := handler.NewCatalogHandler(cfg.CatalogService)
	playerHandler := handler.NewPlayerHandler(cfg.PlayersService)
	exportHandler := handler.NewExportHandler(cfg.ExportService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/verify", authHandler.Verify).Methods(http.MethodGet)

	// Read routes (no auth: exports and listings work without a token)
	api.HandleFunc("/sports", catalogHandler.ListSports).Methods(http.MethodGet)
	api.HandleFunc("/matches", catalogHandler.ListMatches).Methods(http.MethodGet)
	api.HandleFunc("/teams", catalogHandler.ListTeams).Methods(http.MethodGet)
	api.HandleFunc("/players/{teamId}", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/export/{matchId}", exportHandler.Match).Methods(http.MethodGet)
	api.HandleFunc("/export/team/{teamId}", exportHandler.Team).Methods(http.MethodGet)
	api.HandleFunc("/captions/{matchId}", exportHandler.Captions).Methods(http.MethodGet)

	// Parsing is a pure dry run, no auth needed
	api.HandleFunc("/parse", playerHandler.Parse).Methods(http.MethodPost)

	// Write routes require a token (bypassed in trusted mode)
	write := api.NewRoute().Subrouter()
	write.Use(authMiddleware)
	write.HandleFunc("/sports", catalogHandler.SaveSports).Methods(http.MethodPost)
	write.HandleFunc("/matches", catalogHandler.SaveMatches).Methods(http.MethodPost)
	write.HandleFunc("/teams", catalogHandler.SaveTeams).Methods(http.MethodPost)
	write.HandleFunc("/players/{teamId}", playerHandler.Save).Methods(http.MethodPost)
	write.HandleFunc("/players/{teamId}", playerHandler.Delete).Methods(http.MethodDelete)
	write.HandleFunc("/players/{teamId}/swap", playerHandler.Swap).Methods(http.MethodPost)
	write.HandleFunc("/players/{teamId}/clean", playerHandler.Clean).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
