package repository

import (
	"context"
	"time"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// Bonus handles bonus and activation persistence
type Bonus interface {
	// GetBonus returns the bonus or domain.ErrBonusNotFound
	GetBonus(ctx context.Context, bonusID string) (*domain.Bonus, error)

	// ListAvailableBonuses returns bonuses with available_until after now, soonest expiry first
	ListAvailableBonuses(ctx context.Context, now time.Time) ([]domain.Bonus, error)

	// ListActiveBonuses returns the player's activations with active_until after now
	ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error)

	// ListActivations returns every activation the player ever received
	ListActivations(ctx context.Context, playerID string) ([]domain.ActiveBonus, error)

	BeginTx(ctx context.Context) (BonusTx, error)
}

// BonusTx defines the interface for bonus generation and purchase transactions
type BonusTx interface {
	Tx

	// LockBonusPool serializes generation across processes sharing the database
	LockBonusPool(ctx context.Context) error
	CountAvailableBonuses(ctx context.Context, now time.Time) (int, error)
	CreateBonus(ctx context.Context, b *domain.Bonus) error

	GetBonusForUpdate(ctx context.Context, bonusID string) (*domain.Bonus, error)
	UpdateBonusAvailability(ctx context.Context, bonusID string, availableUntil time.Time) error

	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	UpdatePlayerBalance(ctx context.Context, playerID string, balance float64) error

	HasActivation(ctx context.Context, playerID, bonusID string) (bool, error)

	// ListOtherPlayerIDs returns every player id except playerID
	ListOtherPlayerIDs(ctx context.Context, playerID string) ([]string, error)
	CreateActivations(ctx context.Context, activations []domain.Activation) error
}
