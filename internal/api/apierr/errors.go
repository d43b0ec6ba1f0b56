package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/minesweeper-go/internal/model"
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
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeGameNotFound          = "GAME_NOT_FOUND"
	CodeGameComplete          = "GAME_COMPLETE"
	CodeInvalidBoard          = "INVALID_BOARD"
	CodeCellOutOfBounds       = "CELL_OUT_OF_BOUNDS"
	CodeCellAlreadyPlayed     = "CELL_ALREADY_PLAYED"
	CodeCellFlagged           = "CELL_FLAGGED"
	CodeCellNotFlagged        = "CELL_NOT_FLAGGED"
	CodeKnowledgeNotFound     = "KNOWLEDGE_NOT_FOUND"
	CodeInconsistentKnowledge = "INCONSISTENT_KNOWLEDGE"
	CodeInternalError         = "INTERNAL_ERROR"
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

	// Map model errors
	switch {
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameComplete):
		return &httpError{http.StatusConflict, APIError{CodeGameComplete, "Game is already complete"}}
	case errors.Is(err, model.ErrInvalidBoard):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBoard, "Invalid board parameters"}}
	case errors.Is(err, model.ErrCellOutOfBounds):
		return &httpError{http.StatusBadRequest, APIError{CodeCellOutOfBounds, "Cell is outside the board"}}
	case errors.Is(err, model.ErrCellAlreadyPlayed):
		return &httpError{http.StatusConflict, APIError{CodeCellAlreadyPlayed, "Cell has already been played"}}
	case errors.Is(err, model.ErrCellFlagged):
		return &httpError{http.StatusConflict, APIError{CodeCellFlagged, "Cell is flagged"}}
	case errors.Is(err, model.ErrCellNotFlagged):
		return &httpError{http.StatusConflict, APIError{CodeCellNotFlagged, "Cell is not flagged"}}
	case errors.Is(err, model.ErrKnowledgeNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeKnowledgeNotFound, "Knowledge not found"}}
	case errors.Is(err, model.ErrInconsistentKnowledge):
		return &httpError{http.StatusConflict, APIError{CodeInconsistentKnowledge, "Knowledge base is inconsistent"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
