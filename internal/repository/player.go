package repository

import (
	"context"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// Player handles player persistence
type Player interface {
	// GetPlayer returns the player with its sites, or domain.ErrPlayerNotFound
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)

	// GetPlayerByUsername returns the player with its sites, or domain.ErrPlayerNotFound
	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)

	// ListPlayers returns every player with sites, highest balance first
	ListPlayers(ctx context.Context) ([]domain.Player, error)

	BeginTx(ctx context.Context) (PlayerTx, error)
}

// PlayerTx defines the interface for registration transactions
type PlayerTx interface {
	Tx

	GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error)

	// CreatePlayer inserts the player and every site in p.Sites
	CreatePlayer(ctx context.Context, p *domain.Player) error
}
