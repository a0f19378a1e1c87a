package repository

import (
	"context"
	"time"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// Site handles resource site persistence
type Site interface {
	GetSite(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.Site, error)
	ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error)
	BeginTx(ctx context.Context) (SiteTx, error)
}

// SiteTx defines the interface for site operation transactions.
// The ForUpdate reads take row locks held until commit.
type SiteTx interface {
	Tx

	GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error)
	GetSiteForUpdate(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.Site, error)
	ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error)
	UpdatePlayerBalance(ctx context.Context, playerID string, balance float64) error
	UpdateSite(ctx context.Context, site *domain.Site) error
}
