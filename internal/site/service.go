package site

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/IdleForge_Go/internal/bonus"
	"github.com/osse101/IdleForge_Go/internal/concurrency"
	"github.com/osse101/IdleForge_Go/internal/cooldown"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/event"
	"github.com/osse101/IdleForge_Go/internal/logger"
	"github.com/osse101/IdleForge_Go/internal/pricing"
	"github.com/osse101/IdleForge_Go/internal/repository"
)

// Service defines the resource site engine, shared by every site kind
type Service interface {
	BuyWorker(ctx context.Context, playerID string, kind domain.SiteKind, amount int) (*domain.SiteResult, error)
	UpgradeLevel(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error)
	Gather(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error)
	Sell(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error)

	// Quote returns the site with undiscounted prices for the next purchases
	Quote(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteView, error)
}

type service struct {
	repo  repository.Site
	kinds Kinds
	curve pricing.Curve
	locks *concurrency.LockManager
	bus   event.Bus
	now   func() time.Time
}

// Option customizes a site service
type Option func(*service)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithEventBus publishes player updates to bus
func WithEventBus(bus event.Bus) Option {
	return func(s *service) { s.bus = bus }
}

// NewService creates a new site service
func NewService(repo repository.Site, kinds Kinds, curve pricing.Curve, locks *concurrency.LockManager, opts ...Option) Service {
	s := &service{
		repo:  repo,
		kinds: kinds,
		curve: curve,
		locks: locks,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// mutation is the body of a site operation, run with the player and site rows locked
type mutation func(ctx context.Context, st *state) error

type state struct {
	cfg    KindConfig
	now    time.Time
	player *domain.Player
	site   *domain.Site
	active []domain.ActiveBonus
	result domain.SiteResult
	event  domain.PlayerUpdatedPayload
}

// run serializes on the player, opens one transaction, loads rows, applies fn and commits
func (s *service) run(ctx context.Context, playerID string, kind domain.SiteKind, withBonuses bool, fn mutation) (*domain.SiteResult, error) {
	cfg, err := s.kinds.Get(kind)
	if err != nil {
		return nil, err
	}

	release := s.locks.Acquire(playerLockPrefix + playerID)
	defer release()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	st := &state{cfg: cfg, now: s.now()}

	if st.player, err = tx.GetPlayerForUpdate(ctx, playerID); err != nil {
		return nil, err
	}
	st.site, err = tx.GetSiteForUpdate(ctx, playerID, kind)
	if errors.Is(err, domain.ErrNotFound) {
		// Registration creates every site with the player
		return nil, fmt.Errorf("%w: %v", domain.ErrInconsistentState, err)
	}
	if err != nil {
		return nil, err
	}
	if withBonuses {
		if st.active, err = tx.ListActiveBonuses(ctx, playerID, st.now); err != nil {
			return nil, fmt.Errorf(ErrMsgLoadBonuses, err)
		}
	}

	startBalance := st.player.Balance
	if err := fn(ctx, st); err != nil {
		return nil, err
	}

	if st.player.Balance != startBalance {
		if err := tx.UpdatePlayerBalance(ctx, playerID, st.player.Balance); err != nil {
			return nil, fmt.Errorf("failed to update balance: %w", err)
		}
	}
	if err := tx.UpdateSite(ctx, st.site); err != nil {
		return nil, fmt.Errorf("failed to update site: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	st.result.Player = *st.player
	st.result.Site = *st.site
	st.result.AffectedPlayerIDs = []string{playerID}

	st.event.Kind = kind
	st.event.AffectedPlayerIDs = st.result.AffectedPlayerIDs
	s.publish(ctx, event.NewPlayerUpdatedEvent(st.event))

	return &st.result, nil
}

// BuyWorker hires amount workers at the current stacked price
func (s *service) BuyWorker(ctx context.Context, playerID string, kind domain.SiteKind, amount int) (*domain.SiteResult, error) {
	if amount < 1 || amount > domain.MaxWorkersPerPurchase {
		return nil, fmt.Errorf("%w: amount must be between 1 and %d", domain.ErrInvalidInput, domain.MaxWorkersPerPurchase)
	}

	return s.run(ctx, playerID, kind, true, func(ctx context.Context, st *state) error {
		var price float64
		if amount == 1 {
			price = s.curve.UnitPrice(st.cfg.WorkerBasePrice, st.site.Workers)
		} else {
			price = s.curve.CumulativePrice(st.cfg.WorkerBasePrice, st.site.Workers, amount)
		}

		price, err := bonus.Stack(price, st.active, st.cfg.PurchaseKinds)
		if err != nil {
			return err
		}

		if err := st.player.Debit(price); err != nil {
			return fmt.Errorf("buy %d %s: %w", amount, st.cfg.WorkerName, err)
		}

		st.site.Workers += amount
		st.result.Price = price
		st.event = domain.PlayerUpdatedPayload{Action: event.ActionBuyWorker, Quantity: amount, Spent: price}

		logger.FromContext(ctx).Info(LogMsgWorkersBought,
			"player_id", st.player.ID,
			"kind", st.cfg.Kind,
			"amount", amount,
			"price", price,
			"workers", st.site.Workers)
		return nil
	})
}

// UpgradeLevel raises the site level by one
func (s *service) UpgradeLevel(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error) {
	return s.run(ctx, playerID, kind, true, func(ctx context.Context, st *state) error {
		if st.site.Level >= domain.MaxSiteLevel {
			return fmt.Errorf("%w: %s is already level %d", domain.ErrLevelTooHigh, st.cfg.SiteName, st.site.Level)
		}
		if st.site.Workers == 0 {
			return fmt.Errorf("%w: %s has no %s", domain.ErrNoGatherer, st.cfg.SiteName, st.cfg.WorkerName)
		}

		price, err := bonus.Stack(s.curve.LevelPrice(st.cfg.LevelBasePrice, st.site.Level), st.active, st.cfg.PurchaseKinds)
		if err != nil {
			return err
		}

		if err := st.player.Debit(price); err != nil {
			return fmt.Errorf("upgrade %s: %w", st.cfg.SiteName, err)
		}

		st.site.Level++
		st.result.Price = price
		st.event = domain.PlayerUpdatedPayload{Action: event.ActionUpgradeLevel, Quantity: 1, Spent: price}

		logger.FromContext(ctx).Info(LogMsgSiteUpgraded,
			"player_id", st.player.ID,
			"kind", st.cfg.Kind,
			"level", st.site.Level,
			"price", price)
		return nil
	})
}

// Gather collects resources once the cooldown elapsed
func (s *service) Gather(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error) {
	return s.run(ctx, playerID, kind, true, func(ctx context.Context, st *state) error {
		if err := cooldown.Enforce("gather "+string(st.cfg.Kind), st.now, st.site.LastGather, st.cfg.Cooldown); err != nil {
			return err
		}

		base := st.cfg.BaseGatherAmount * float64(st.site.Workers) * pricing.LevelMultiplier(st.site.Level)
		gain, err := bonus.Stack(base, st.active, st.cfg.GatherKinds)
		if err != nil {
			return err
		}

		st.site.Amount += gain
		st.site.LastGather = st.now
		st.result.Gained = gain
		st.event = domain.PlayerUpdatedPayload{Action: event.ActionGather, Gained: gain}

		logger.FromContext(ctx).Debug(LogMsgGathered,
			"player_id", st.player.ID,
			"kind", st.cfg.Kind,
			"gained", gain,
			"amount", st.site.Amount)
		return nil
	})
}

// Sell converts the whole stock into currency
func (s *service) Sell(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteResult, error) {
	return s.run(ctx, playerID, kind, false, func(ctx context.Context, st *state) error {
		revenue := st.site.Amount * st.cfg.SellPrice

		if err := st.player.Credit(revenue); err != nil {
			return err
		}
		st.site.Amount = 0
		st.result.Revenue = revenue
		st.event = domain.PlayerUpdatedPayload{Action: event.ActionSell, Earned: revenue}

		logger.FromContext(ctx).Info(LogMsgSold,
			"player_id", st.player.ID,
			"kind", st.cfg.Kind,
			"revenue", revenue,
			"balance", st.player.Balance)
		return nil
	})
}

// Quote returns the site with the raw prices of its next purchases
func (s *service) Quote(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.SiteView, error) {
	cfg, err := s.kinds.Get(kind)
	if err != nil {
		return nil, err
	}

	st, err := s.repo.GetSite(ctx, playerID, kind)
	if err != nil {
		return nil, err
	}

	view := Describe(*st, cfg, s.curve)
	return &view, nil
}

// Describe builds a SiteView from a site and its kind settings
func Describe(st domain.Site, cfg KindConfig, curve pricing.Curve) domain.SiteView {
	return domain.SiteView{
		Site:            st,
		Name:            cfg.SiteName,
		WorkerName:      cfg.WorkerName,
		Cost1:           curve.UnitPrice(cfg.WorkerBasePrice, st.Workers),
		Cost10:          curve.CumulativePrice(cfg.WorkerBasePrice, st.Workers, 10),
		Cost100:         curve.CumulativePrice(cfg.WorkerBasePrice, st.Workers, 100),
		CostLevel:       curve.LevelPrice(cfg.LevelBasePrice, st.Level),
		LevelMultiplier: pricing.LevelMultiplier(st.Level),
		AvailableAt:     st.LastGather.Add(cfg.Cooldown),
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
