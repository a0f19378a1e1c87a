package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{domain.ErrPlayerNotFound, http.StatusNotFound},
		{fmt.Errorf("load: %w", domain.ErrBonusNotFound), http.StatusNotFound},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrNotAvailable, http.StatusForbidden},
		{domain.ErrAlreadyPurchased, http.StatusForbidden},
		{fmt.Errorf("%w: need 10", domain.ErrInsufficientFunds), http.StatusForbidden},
		{domain.ErrLevelTooHigh, http.StatusForbidden},
		{domain.ErrNoGatherer, http.StatusForbidden},
		{domain.ErrUnknownSiteKind, http.StatusBadRequest},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrInconsistentState, http.StatusInternalServerError},
		{assert.AnError, http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		name := "nil"
		if tt.err != nil {
			name = tt.err.Error()
		}
		t.Run(name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	type req struct {
		Kind string `validate:"required,sitekind"`
		N    int    `validate:"min=1"`
	}

	errs := FormatValidationError(GetValidator().ValidateStruct(req{Kind: "gold"}))

	assert.Equal(t, "Must be one of wood, stone, iron", errs["kind"])
	assert.Equal(t, "Must be at least 1", errs["n"])
	assert.Nil(t, FormatValidationError(nil))
	assert.Contains(t, FormatValidationError(assert.AnError), "error")
}
