package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mvukas/rostertag/internal/api/apierr"
	"github.com/mvukas/rostertag/internal/api/response"
	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/services/catalog"
)

// CatalogHandler handles the sport/match/team collection endpoints.
// GET returns the whole collection; POST replaces it, mirroring how the
// single-operator client saves its state.
type CatalogHandler struct {
	catalog *catalog.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalogService,
	}
}

// ListSports handles GET /api/sports
func (h *CatalogHandler) ListSports(w http.ResponseWriter, r *http.Request) {
	sports, err := h.catalog.Sports(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, sports)
}

// SaveSports handles POST /api/sports
func (h *CatalogHandler) SaveSports(w http.ResponseWriter, r *http.Request) {
	var sports []model.Sport
	if err := json.NewDecoder(r.Body).Decode(&sports); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if err := h.catalog.ReplaceSports(r.Context(), sports); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SaveResponse{Success: true})
}

// ListMatches handles GET /api/matches
func (h *CatalogHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.catalog.Matches(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, matches)
}

// SaveMatches handles POST /api/matches
func (h *CatalogHandler) SaveMatches(w http.ResponseWriter, r *http.Request) {
	var matches []model.Match
	if err := json.NewDecoder(r.Body).Decode(&matches); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if err := h.catalog.ReplaceMatches(r.Context(), matches); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SaveResponse{Success: true})
}

// ListTeams handles GET /api/teams
func (h *CatalogHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.catalog.Teams(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, teams)
}

// SaveTeams handles POST /api/teams
func (h *CatalogHandler) SaveTeams(w http.ResponseWriter, r *http.Request) {
	var teams []model.Team
	if err := json.NewDecoder(r.Body).Decode(&teams); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if err := h.catalog.ReplaceTeams(r.Context(), teams); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SaveResponse{Success: true})
}
