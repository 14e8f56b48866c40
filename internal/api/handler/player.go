package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mvukas/rostertag/internal/api/apierr"
	"github.com/mvukas/rostertag/internal/api/request"
	"github.com/mvukas/rostertag/internal/api/response"
	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/roster"
	"github.com/mvukas/rostertag/internal/services/players"
)

// PlayerHandler handles per-team roster endpoints and the dry-run parser
type PlayerHandler struct {
	players *players.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playersService *players.Service) *PlayerHandler {
	return &PlayerHandler{
		players: playersService,
	}
}

func teamID(r *http.Request) model.TeamID {
	return model.TeamID(mux.Vars(r)["teamId"])
}

// List handles GET /api/players/{teamId}
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.players.List(r.Context(), teamID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, list)
}

// Save handles POST /api/players/{teamId}
func (h *PlayerHandler) Save(w http.ResponseWriter, r *http.Request) {
	var list []model.Player
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}
	if err := h.players.Replace(r.Context(), teamID(r), list); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SaveResponse{Success: true})
}

// Delete handles DELETE /api/players/{teamId}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.players.Delete(r.Context(), teamID(r)); err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SaveResponse{Success: true})
}

// Swap handles POST /api/players/{teamId}/swap. It swaps first and last
// names across the whole roster, for pasted lists in the wrong order.
func (h *PlayerHandler) Swap(w http.ResponseWriter, r *http.Request) {
	list, err := h.players.SwapNames(r.Context(), teamID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, list)
}

// Clean handles POST /api/players/{teamId}/clean. It strips diacritics
// from every player name on the roster.
func (h *PlayerHandler) Clean(w http.ResponseWriter, r *http.Request) {
	list, err := h.players.CleanNames(r.Context(), teamID(r))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, list)
}

// Parse handles POST /api/parse. It runs the roster text parser without
// touching storage, so clients can preview what a paste would produce.
func (h *PlayerHandler) Parse(w http.ResponseWriter, r *http.Request) {
	var req request.ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	text := req.Text
	if req.Filter {
		text = roster.FilterCandidateLines(text)
	}

	response.JSON(w, http.StatusOK, roster.ParseText(text))
}
