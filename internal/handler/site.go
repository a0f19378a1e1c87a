package handler

import (
	"context"
	"net/http"

	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/logger"
	"github.com/osse101/IdleForge_Go/internal/site"
)

// BuyWorkerRequest represents the request to hire workers at a site
type BuyWorkerRequest struct {
	Amount int `json:"amount" validate:"required,min=1,max=1000"`
}

// SiteHandler handles the resource site operations of the calling player
type SiteHandler struct {
	siteSvc site.Service
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(siteSvc site.Service) *SiteHandler {
	return &SiteHandler{siteSvc: siteSvc}
}

type siteOperation func(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error)

// target resolves the calling player and the {kind} URL parameter.
// If ok is false the response has already been written.
func target(w http.ResponseWriter, r *http.Request) (string, domain.SiteKind, bool) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return "", "", false
	}
	kind, ok := siteKindParam(w, r)
	if !ok {
		return "", "", false
	}
	return playerID, kind, true
}

func (h *SiteHandler) run(w http.ResponseWriter, r *http.Request, op, playerID string, kind domain.SiteKind, fn siteOperation) {
	result, err := fn(r.Context(), playerID, kind)
	if err != nil {
		respondServiceError(w, r, op, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgSiteOperation,
		"operation", op,
		"kind", kind,
		"balance", result.Player.Balance)
	respondJSON(w, http.StatusOK, result)
}

// simple adapts an operation without a request body into a handler
func (h *SiteHandler) simple(op string, fn siteOperation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, kind, ok := target(w, r)
		if !ok {
			return
		}
		h.run(w, r, op, playerID, kind, fn)
	}
}

// BuyWorker hires workers at the site
func (h *SiteHandler) BuyWorker(w http.ResponseWriter, r *http.Request) {
	playerID, kind, ok := target(w, r)
	if !ok {
		return
	}
	var req BuyWorkerRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpBuyWorker); err != nil {
		return
	}

	h.run(w, r, OpBuyWorker, playerID, kind, func(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error) {
		return h.siteSvc.BuyWorker(ctx, playerID, kind, req.Amount)
	})
}

// UpgradeLevel raises the site level by one
func (h *SiteHandler) UpgradeLevel(w http.ResponseWriter, r *http.Request) {
	h.simple(OpUpgradeLevel, h.siteSvc.UpgradeLevel)(w, r)
}

// Gather collects resources once the site cooldown has elapsed
func (h *SiteHandler) Gather(w http.ResponseWriter, r *http.Request) {
	h.simple(OpGather, h.siteSvc.Gather)(w, r)
}

// Sell converts the site's stock to money
func (h *SiteHandler) Sell(w http.ResponseWriter, r *http.Request) {
	h.simple(OpSell, h.siteSvc.Sell)(w, r)
}

// Quote returns the site with its next prices
func (h *SiteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	playerID, kind, ok := target(w, r)
	if !ok {
		return
	}

	view, err := h.siteSvc.Quote(r.Context(), playerID, kind)
	if err != nil {
		respondServiceError(w, r, OpQuote, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}
