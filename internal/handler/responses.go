package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// PagedResponse wraps one page of a list
type PagedResponse struct {
	Items  interface{} `json:"items"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode first so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and answers with the mapped status and message
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "status", status, "error", err)
	}

	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgResourceNotFoundErr = "Resource not found."

	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgMatchNotFoundError      = "Match not found"
	ErrMsgSeasonNotFoundError     = "Season not found"
	ErrMsgRoundNotFoundError      = "Round not found"
	ErrMsgPredictionNotFoundError = "Prediction not found"
	ErrMsgNotRankedError          = "No standing on this leaderboard yet"

	ErrMsgAlreadyPredictedError  = "You have already made this prediction"
	ErrMsgMatchLockedError       = "Predictions for this match are closed"
	ErrMsgMatchNotFinishedError  = "Match result is not final yet"
	ErrMsgAlreadyCalculatedError = "Prediction has already been scored"
	ErrMsgNotYourPredictionError = "You can only change your own predictions"

	ErrMsgInsufficientPointsError = "Not enough points"
	ErrMsgInvalidTransactionError = "Invalid points transaction"

	ErrMsgSeasonClosedError    = "Champion predictions for this season are closed"
	ErrMsgTeamNotInSeasonError = "That team is not part of this season"
	ErrMsgAlreadyResolvedError = "The season champion has already been confirmed"

	ErrMsgInvalidScopeError = "Unknown leaderboard"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Specific not-found errors are checked before the ErrNotFound parent.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrMatchNotFound):
		return http.StatusNotFound, ErrMsgMatchNotFoundError
	case errors.Is(err, domain.ErrSeasonNotFound):
		return http.StatusNotFound, ErrMsgSeasonNotFoundError
	case errors.Is(err, domain.ErrRoundNotFound):
		return http.StatusNotFound, ErrMsgRoundNotFoundError
	case errors.Is(err, domain.ErrPredictionNotFound):
		return http.StatusNotFound, ErrMsgPredictionNotFoundError
	case errors.Is(err, domain.ErrNotRanked):
		return http.StatusNotFound, ErrMsgNotRankedError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFoundErr

	case errors.Is(err, domain.ErrAlreadyPredicted):
		return http.StatusConflict, ErrMsgAlreadyPredictedError
	case errors.Is(err, domain.ErrMatchLocked):
		return http.StatusConflict, ErrMsgMatchLockedError
	case errors.Is(err, domain.ErrMatchNotFinished):
		return http.StatusConflict, ErrMsgMatchNotFinishedError
	case errors.Is(err, domain.ErrAlreadyCalculated):
		return http.StatusConflict, ErrMsgAlreadyCalculatedError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, ErrMsgNotYourPredictionError

	case errors.Is(err, domain.ErrInsufficientPoints):
		return http.StatusUnprocessableEntity, ErrMsgInsufficientPointsError
	case errors.Is(err, domain.ErrInvalidReference),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrInvalidTransactionSign):
		return http.StatusBadRequest, ErrMsgInvalidTransactionError

	case errors.Is(err, domain.ErrSeasonClosed):
		return http.StatusConflict, ErrMsgSeasonClosedError
	case errors.Is(err, domain.ErrTeamNotInSeason):
		return http.StatusBadRequest, ErrMsgTeamNotInSeasonError
	case errors.Is(err, domain.ErrAlreadyResolved):
		return http.StatusConflict, ErrMsgAlreadyResolvedError

	case errors.Is(err, domain.ErrInvalidScope):
		return http.StatusBadRequest, ErrMsgInvalidScopeError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
