package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/logger"
	"github.com/osse101/IdleForge_Go/internal/middleware"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written and the handler should return.
//
// Example usage:
//
//	var req BuyWorkerRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpBuyWorker); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, op string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "operation", op, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}
	log.Debug(LogMsgRequestDecoded, "operation", op)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// requirePlayer returns the player id resolved by the identity middleware.
// If ok is false the response has already been written.
func requirePlayer(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.PlayerIDFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgMissingPlayer)
		return "", false
	}
	return id, true
}

// siteKindParam reads and checks the {kind} URL parameter.
// If ok is false the response has already been written.
func siteKindParam(w http.ResponseWriter, r *http.Request) (domain.SiteKind, bool) {
	kind := domain.SiteKind(chi.URLParam(r, ParamKind))
	if !kind.Valid() {
		respondError(w, http.StatusBadRequest, ErrMsgUnknownSiteKind)
		return "", false
	}
	return kind, true
}

// uuidParam reads a URL parameter that must hold a UUID.
// If ok is false the response has already been written.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)
	if err := GetValidator().ValidateVar(value, "required,uuid"); err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
		return "", false
	}
	return value, true
}
