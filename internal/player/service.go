package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleForge_Go/internal/concurrency"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/event"
	"github.com/osse101/IdleForge_Go/internal/logger"
	"github.com/osse101/IdleForge_Go/internal/repository"
	"github.com/osse101/IdleForge_Go/internal/site"
)

// Service defines player registration and lookup
type Service interface {
	// Register creates a player with default sites, or returns the existing one for username
	Register(ctx context.Context, username string) (*domain.Player, bool, error)
	Get(ctx context.Context, playerID string) (*domain.Player, error)
	// List returns every player ordered by balance, richest first
	List(ctx context.Context) ([]domain.Player, error)
}

type service struct {
	repo  repository.Player
	kinds site.Kinds
	locks *concurrency.LockManager
	bus   event.Bus
	now   func() time.Time
}

// NewService creates a new player service
func NewService(repo repository.Player, kinds site.Kinds, locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{
		repo:  repo,
		kinds: kinds,
		locks: locks,
		bus:   bus,
		now:   time.Now,
	}
}

// Register creates a player with zero balance and one site of every kind.
// The bool result reports whether a new player was created.
func (s *service) Register(ctx context.Context, username string) (*domain.Player, bool, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}

	release := s.locks.Acquire(usernameLockPrefix + strings.ToLower(username))
	defer release()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	existing, err := tx.GetPlayerByUsername(ctx, username)
	if err == nil {
		log.Debug(LogMsgPlayerExists, "player_id", existing.ID, "username", username)
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to look up username: %w", err)
	}

	p := s.newPlayer(username)
	if err := tx.CreatePlayer(ctx, p); err != nil {
		return nil, false, fmt.Errorf("failed to create player: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info(LogMsgPlayerRegistered, "player_id", p.ID, "username", username)
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewPlayerRegisteredEvent(p.ID)); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}

	return p, true, nil
}

func (s *service) newPlayer(username string) *domain.Player {
	now := s.now().UTC().Truncate(time.Millisecond)
	p := &domain.Player{
		ID:        uuid.NewString(),
		Username:  username,
		Balance:   0,
		CreatedAt: now,
	}
	for _, kind := range domain.AllSiteKinds {
		cfg, err := s.kinds.Get(kind)
		if err != nil {
			continue
		}
		p.Sites = append(p.Sites, domain.Site{
			ID:         uuid.NewString(),
			PlayerID:   p.ID,
			Kind:       kind,
			Workers:    cfg.DefaultWorkers,
			Amount:     0,
			Level:      domain.MinSiteLevel,
			LastGather: now,
		})
	}
	return p
}

// Get returns the player with sites
func (s *service) Get(ctx context.Context, playerID string) (*domain.Player, error) {
	if _, err := uuid.Parse(playerID); err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrPlayerNotFound, playerID)
	}
	return s.repo.GetPlayer(ctx, playerID)
}

// List returns every player ordered by balance, richest first
func (s *service) List(ctx context.Context) ([]domain.Player, error) {
	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}
