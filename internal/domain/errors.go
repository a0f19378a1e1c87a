package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgNotFound          = "not found"
	ErrMsgNotAvailable      = "not available"
	ErrMsgAlreadyPurchased  = "bonus already purchased"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgLevelTooHigh      = "level too high"
	ErrMsgNoGatherer        = "no gatherer available"
	ErrMsgInconsistentState = "inconsistent state"
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgUnknownSiteKind   = "unknown site kind"
	ErrMsgTxClosed          = "tx is closed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound          = errors.New(ErrMsgNotFound)
	ErrNotAvailable      = errors.New(ErrMsgNotAvailable)
	ErrAlreadyPurchased  = errors.New(ErrMsgAlreadyPurchased)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrLevelTooHigh      = errors.New(ErrMsgLevelTooHigh)
	ErrNoGatherer        = errors.New(ErrMsgNoGatherer)
	ErrInconsistentState = errors.New(ErrMsgInconsistentState)
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrUnknownSiteKind   = fmt.Errorf("%w: %s", ErrInvalidInput, ErrMsgUnknownSiteKind)

	// Entity lookups match ErrNotFound via errors.Is
	ErrPlayerNotFound = fmt.Errorf("player %w", ErrNotFound)
	ErrBonusNotFound  = fmt.Errorf("bonus %w", ErrNotFound)
)
