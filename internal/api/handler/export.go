package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mvukas/rostertag/internal/api/apierr"
	"github.com/mvukas/rostertag/internal/api/response"
	"github.com/mvukas/rostertag/internal/model"
	exportsvc "github.com/mvukas/rostertag/internal/services/export"
)

// ExportHandler serves rendered tagging files and agency captions
type ExportHandler struct {
	export *exportsvc.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *exportsvc.Service) *ExportHandler {
	return &ExportHandler{
		export: exportService,
	}
}

// Match handles GET /api/export/{matchId}. With ?format=json the
// artifact comes back as JSON; otherwise it is a plain-text download.
func (h *ExportHandler) Match(w http.ResponseWriter, r *http.Request) {
	matchID := model.MatchID(mux.Vars(r)["matchId"])

	artifact, err := h.export.ForMatch(r.Context(), matchID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	writeArtifact(w, r, artifact)
}

// Team handles GET /api/export/team/{teamId}
func (h *ExportHandler) Team(w http.ResponseWriter, r *http.Request) {
	teamID := model.TeamID(mux.Vars(r)["teamId"])

	artifact, err := h.export.ForTeam(r.Context(), teamID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	writeArtifact(w, r, artifact)
}

// Captions handles GET /api/captions/{matchId}
func (h *ExportHandler) Captions(w http.ResponseWriter, r *http.Request) {
	matchID := model.MatchID(mux.Vars(r)["matchId"])

	all, err := h.export.Captions(r.Context(), matchID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, all)
}

func writeArtifact(w http.ResponseWriter, r *http.Request, artifact exportsvc.Artifact) {
	if r.URL.Query().Get("format") == "json" {
		response.JSON(w, http.StatusOK, response.ExportResponse{
			Filename: artifact.Filename,
			Content:  artifact.Content,
		})
		return
	}
	response.TextFile(w, artifact.Filename, artifact.Content)
}
