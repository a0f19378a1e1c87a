package handler

import (
	"context"
	"net/http"

	"github.com/osse101/IdleForge_Go/internal/logger"
)

// BonusGenerator adds a bonus to the pool when there is room
type BonusGenerator interface {
	GenerateNewBonus(ctx context.Context) (bool, error)
}

// GenerateBonusResponse reports whether a bonus was created
type GenerateBonusResponse struct {
	Created bool `json:"created"`
}

// HandleGenerateBonus triggers one bonus generation run outside the schedule
func HandleGenerateBonus(generator BonusGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := generator.GenerateNewBonus(r.Context())
		if err != nil {
			respondServiceError(w, r, OpGenerateBonus, err)
			return
		}
		logger.FromContext(r.Context()).Info(LogMsgBonusGenerationRun, "created", created)
		respondJSON(w, http.StatusOK, GenerateBonusResponse{Created: created})
	}
}
