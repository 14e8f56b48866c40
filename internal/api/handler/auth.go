package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mvukas/rostertag/internal/api/apierr"
	"github.com/mvukas/rostertag/internal/api/request"
	"github.com/mvukas/rostertag/internal/api/response"
	"github.com/mvukas/rostertag/internal/services/auth"
)

// AuthHandler handles admin login and token verification
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	session, err := h.authService.Login(req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponse{
		Token:   session.Token,
		Trusted: session.Trusted,
	})
}

// Verify handles GET /api/auth/verify
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	if h.authService.TrustedMode() {
		response.JSON(w, http.StatusOK, response.VerifyResponse{Valid: true, Trusted: true})
		return
	}

	authHeader := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		apierr.WriteError(w, apierr.NewUnauthorizedError())
		return
	}

	if _, err := h.authService.ValidateSession(token); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VerifyResponse{Valid: true})
}
