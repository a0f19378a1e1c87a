package bootstrap

import (
	"github.com/osse101/IdleForge_Go/internal/bonus"
	"github.com/osse101/IdleForge_Go/internal/concurrency"
	"github.com/osse101/IdleForge_Go/internal/config"
	"github.com/osse101/IdleForge_Go/internal/event"
	"github.com/osse101/IdleForge_Go/internal/player"
	"github.com/osse101/IdleForge_Go/internal/site"
)

// Services holds the game services built over one store. They share a
// LockManager so every operation on a player serializes on the same key.
type Services struct {
	Players player.Service
	Sites   site.Service
	Bonuses bonus.Service
}

// InitializeServices creates the game services from the store and the economy tunables
func InitializeServices(store *Store, econ config.Economy, bus event.Bus) *Services {
	locks := concurrency.NewLockManager()
	return &Services{
		Players: player.NewService(store.Players, econ.Sites, locks, bus),
		Sites:   site.NewService(store.Sites, econ.Sites, econ.Curve, locks, site.WithEventBus(bus)),
		Bonuses: bonus.NewService(store.Bonuses, econ.Bonus, nil, locks, bonus.WithEventBus(bus)),
	}
}
