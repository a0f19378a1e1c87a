package handler

import (
	"context"
	"net/http"

	"github.com/osse101/IdleForge_Go/internal/bonus"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/logger"
)

// ActivationView is an activation with its decorated bonus
type ActivationView struct {
	domain.Activation
	Bonus domain.BonusView `json:"bonus"`
}

// BonusHandler handles bonus listing and purchase
type BonusHandler struct {
	bonusSvc bonus.Service
}

// NewBonusHandler creates a new bonus handler
func NewBonusHandler(bonusSvc bonus.Service) *BonusHandler {
	return &BonusHandler{bonusSvc: bonusSvc}
}

// ListAvailable returns every bonus that can still be bought
func (h *BonusHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	bonuses, err := h.bonusSvc.ListAvailable(r.Context())
	if err != nil {
		respondServiceError(w, r, OpListBonuses, err)
		return
	}
	respondJSON(w, http.StatusOK, bonus.Views(bonuses))
}

// Get returns the bonus named by the {bonusID} URL parameter
func (h *BonusHandler) Get(w http.ResponseWriter, r *http.Request) {
	bonusID, ok := uuidParam(w, r, ParamBonusID)
	if !ok {
		return
	}
	b, err := h.bonusSvc.Get(r.Context(), bonusID)
	if err != nil {
		respondServiceError(w, r, OpGetBonus, err)
		return
	}
	respondJSON(w, http.StatusOK, bonus.View(*b))
}

// AvailableForMe returns the bonuses the caller can still buy
func (h *BonusHandler) AvailableForMe(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}
	bonuses, err := h.bonusSvc.AvailableFor(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, OpListBonuses, err)
		return
	}
	respondJSON(w, http.StatusOK, bonus.Views(bonuses))
}

// Purchase buys the bonus named by the {bonusID} URL parameter
func (h *BonusHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}
	bonusID, ok := uuidParam(w, r, ParamBonusID)
	if !ok {
		return
	}

	result, err := h.bonusSvc.Purchase(r.Context(), playerID, bonusID)
	if err != nil {
		respondServiceError(w, r, OpBuyBonus, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgBonusPurchased,
		"bonus_id", bonusID,
		"target", result.Target,
		"affected", len(result.AffectedPlayerIDs))
	respondJSON(w, http.StatusOK, result)
}

// Active returns the caller's unexpired activations
func (h *BonusHandler) Active(w http.ResponseWriter, r *http.Request) {
	h.activations(w, r, OpActiveBonuses, h.bonusSvc.ActiveFor)
}

// History returns every activation the caller ever received
func (h *BonusHandler) History(w http.ResponseWriter, r *http.Request) {
	h.activations(w, r, OpBonusHistory, h.bonusSvc.AllFor)
}

func (h *BonusHandler) activations(
	w http.ResponseWriter,
	r *http.Request,
	op string,
	list func(ctx context.Context, playerID string) ([]domain.ActiveBonus, error),
) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}
	active, err := list(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, op, err)
		return
	}

	views := make([]ActivationView, 0, len(active))
	for _, a := range active {
		views = append(views, ActivationView{Activation: a.Activation, Bonus: bonus.View(a.Bonus)})
	}
	respondJSON(w, http.StatusOK, views)
}
