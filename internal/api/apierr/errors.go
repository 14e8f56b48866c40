package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mvukas/rostertag/internal/model"
	"github.com/mvukas/rostertag/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInvalidPassword  = "INVALID_PASSWORD"
	CodeSportNotFound    = "SPORT_NOT_FOUND"
	CodeMatchNotFound    = "MATCH_NOT_FOUND"
	CodeTeamNotFound     = "TEAM_NOT_FOUND"
	CodePlayerNotFound   = "PLAYER_NOT_FOUND"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeExportBlocked    = "EXPORT_BLOCKED"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Not-found errors
	case errors.Is(err, model.ErrSportNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSportNotFound, "Sport not found"}}
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "Match not found"}}
	case errors.Is(err, model.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTeamNotFound, "Team not found"}}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}

	// Validation errors
	case errors.Is(err, model.ErrSportNameRequired),
		errors.Is(err, model.ErrTeamNameRequired),
		errors.Is(err, model.ErrLastNameRequired),
		errors.Is(err, model.ErrInvalidMatchDate),
		errors.Is(err, model.ErrMissingParentID),
		errors.Is(err, model.ErrNoTeamSelected):
		return &httpError{http.StatusBadRequest, APIError{CodeValidationFailed, err.Error()}}

	// Export preconditions
	case errors.Is(err, model.ErrTeamCodeRequired),
		errors.Is(err, model.ErrNoValidPlayers):
		return &httpError{http.StatusConflict, APIError{CodeExportBlocked, err.Error()}}

	// Auth errors
	case errors.Is(err, auth.ErrInvalidPassword):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidPassword, "Incorrect password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
