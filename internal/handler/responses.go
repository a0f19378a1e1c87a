package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/IdleForge_Go/internal/cooldown"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool reduces allocations during JSON encoding
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

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed operation and answers with the mapped status
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgOperationFailed, "operation", op, "error", err)
	} else {
		log.Info(LogMsgOperationFailed, "operation", op, "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages users can act upon
func mapServiceErrorToUserMessage(err error) (int, string) {
	var onCooldown cooldown.ErrOnCooldown
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrBonusNotFound):
		return http.StatusNotFound, ErrMsgBonusNotFoundError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFoundError
	case errors.As(err, &onCooldown):
		return http.StatusForbidden, onCooldown.Error()
	case errors.Is(err, domain.ErrNotAvailable):
		return http.StatusForbidden, ErrMsgNotAvailableError
	case errors.Is(err, domain.ErrAlreadyPurchased):
		return http.StatusForbidden, ErrMsgAlreadyPurchasedErr
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusForbidden, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrLevelTooHigh):
		return http.StatusForbidden, ErrMsgLevelTooHighError
	case errors.Is(err, domain.ErrNoGatherer):
		return http.StatusForbidden, ErrMsgNoGathererError
	case errors.Is(err, domain.ErrUnknownSiteKind):
		return http.StatusBadRequest, ErrMsgUnknownSiteKind
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
