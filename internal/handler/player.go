package handler

import (
	"net/http"

	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/logger"
	"github.com/osse101/IdleForge_Go/internal/player"
)

// RegisterPlayerRequest represents the request to register a player
type RegisterPlayerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,username"`
}

// RegisterPlayerResponse is the registered or existing player
type RegisterPlayerResponse struct {
	Player  *domain.Player `json:"player"`
	Created bool           `json:"created"`
}

// IdentityCache learns about players as soon as they register
type IdentityCache interface {
	Remember(playerID string)
}

// PlayerHandler handles player registration and lookup
type PlayerHandler struct {
	playerSvc player.Service
	known     IdentityCache
}

// NewPlayerHandler creates a new player handler; known may be nil
func NewPlayerHandler(playerSvc player.Service, known IdentityCache) *PlayerHandler {
	return &PlayerHandler{
		playerSvc: playerSvc,
		known:     known,
	}
}

// Register creates a player, or returns the existing one for the username
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterPlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, OpRegister); err != nil {
		return
	}

	p, created, err := h.playerSvc.Register(r.Context(), req.Username)
	if err != nil {
		respondServiceError(w, r, OpRegister, err)
		return
	}
	if h.known != nil {
		h.known.Remember(p.ID)
	}

	logger.FromContext(r.Context()).Info(LogMsgPlayerRegistered,
		"player_id", p.ID,
		"username", p.Username,
		"created", created)

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	respondJSON(w, status, RegisterPlayerResponse{Player: p, Created: created})
}

// Get returns the player named by the {playerID} URL parameter
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID, ok := uuidParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	h.respondPlayer(w, r, playerID)
}

// Me returns the calling player
func (h *PlayerHandler) Me(w http.ResponseWriter, r *http.Request) {
	playerID, ok := requirePlayer(w, r)
	if !ok {
		return
	}
	h.respondPlayer(w, r, playerID)
}

func (h *PlayerHandler) respondPlayer(w http.ResponseWriter, r *http.Request, playerID string) {
	p, err := h.playerSvc.Get(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, OpGetPlayer, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// List returns the leaderboard, richest player first
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerSvc.List(r.Context())
	if err != nil {
		respondServiceError(w, r, OpListPlayers, err)
		return
	}
	if players == nil {
		players = []domain.Player{}
	}
	respondJSON(w, http.StatusOK, players)
}
