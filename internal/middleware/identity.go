package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/logger"
	"github.com/osse101/IdleForge_Go/internal/metrics"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

// PlayerIDKey is the context key for the resolved player id
const PlayerIDKey contextKey = "player_id"

// WithPlayerID adds the player id to the context
func WithPlayerID(ctx context.Context, playerID string) context.Context {
	return context.WithValue(ctx, PlayerIDKey, playerID)
}

// PlayerIDFromContext returns the player id set by the identity middleware
func PlayerIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(PlayerIDKey).(string)
	return id, ok && id != ""
}

// PlayerLookup finds a player by id
type PlayerLookup interface {
	Get(ctx context.Context, playerID string) (*domain.Player, error)
}

// Identity resolves the X-Player-ID header to a registered player.
// Known ids are cached so most requests skip the database.
type Identity struct {
	players PlayerLookup
	known   *expirable.LRU[string, struct{}]
}

// NewIdentity creates an identity resolver caching up to size ids for ttl
func NewIdentity(players PlayerLookup, size int, ttl time.Duration) *Identity {
	return &Identity{
		players: players,
		known:   expirable.NewLRU[string, struct{}](size, nil, ttl),
	}
}

// Middleware rejects requests without a valid, registered player id.
// The query parameter is accepted for streaming clients that cannot set headers.
func (i *Identity) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		playerID := strings.TrimSpace(r.Header.Get(HeaderPlayerID))
		if playerID == "" {
			playerID = strings.TrimSpace(r.URL.Query().Get(QueryPlayerID))
		}
		if playerID == "" {
			http.Error(w, ErrMsgMissingPlayerID, http.StatusUnauthorized)
			return
		}
		if _, err := uuid.Parse(playerID); err != nil {
			http.Error(w, ErrMsgInvalidPlayerID, http.StatusBadRequest)
			return
		}

		if status, msg := i.resolve(r.Context(), playerID); status != http.StatusOK {
			http.Error(w, msg, status)
			return
		}

		ctx := WithPlayerID(r.Context(), playerID)
		ctx = logger.WithPlayerID(ctx, playerID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (i *Identity) resolve(ctx context.Context, playerID string) (int, string) {
	if i.known.Contains(playerID) {
		metrics.IdentityLookups.WithLabelValues(metrics.ResultCacheHit).Inc()
		return http.StatusOK, ""
	}
	metrics.IdentityLookups.WithLabelValues(metrics.ResultCacheMiss).Inc()

	if _, err := i.players.Get(ctx, playerID); err != nil {
		log := logger.FromContext(ctx)
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn(LogMsgUnknownPlayer, "player_id", playerID)
			return http.StatusNotFound, ErrMsgUnknownPlayer
		}
		log.Error(LogMsgIdentityLookupFailed, "player_id", playerID, "error", err)
		return http.StatusInternalServerError, ErrMsgIdentityFailed
	}

	i.known.Add(playerID, struct{}{})
	return http.StatusOK, ""
}

// Remember marks a player id as known, e.g. right after registration
func (i *Identity) Remember(playerID string) {
	i.known.Add(playerID, struct{}{})
}
