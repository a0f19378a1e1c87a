package bonus

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleForge_Go/internal/concurrency"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/event"
	"github.com/osse101/IdleForge_Go/internal/logger"
	"github.com/osse101/IdleForge_Go/internal/repository"
)

// Service defines the bonus lifecycle and activation ledger
type Service interface {
	// GenerateNewBonus adds one random bonus when fewer than the pool size are available
	GenerateNewBonus(ctx context.Context) (bool, error)

	// Get returns one bonus whether or not it is still available
	Get(ctx context.Context, bonusID string) (*domain.Bonus, error)

	// ListAvailable returns every bonus that can still be bought
	ListAvailable(ctx context.Context) ([]domain.Bonus, error)

	// AvailableFor returns available bonuses the player never held an activation for
	AvailableFor(ctx context.Context, playerID string) ([]domain.Bonus, error)

	// Purchase buys a bonus for the player, or for everyone else when it targets OTHERS
	Purchase(ctx context.Context, playerID, bonusID string) (*domain.PurchaseResult, error)

	// ActiveFor returns the player's activations that have not expired
	ActiveFor(ctx context.Context, playerID string) ([]domain.ActiveBonus, error)

	// AllFor returns every activation the player ever received
	AllFor(ctx context.Context, playerID string) ([]domain.ActiveBonus, error)
}

type service struct {
	repo      repository.Bonus
	generator *Generator
	poolSize  int
	locks     *concurrency.LockManager
	bus       event.Bus
	now       func() time.Time
}

// Option customizes a bonus service
type Option func(*service)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// WithEventBus publishes purchase and generation events to bus
func WithEventBus(bus event.Bus) Option {
	return func(s *service) { s.bus = bus }
}

// NewService creates a new bonus service
func NewService(
	repo repository.Bonus,
	cfg GenerationConfig,
	rnd Random,
	locks *concurrency.LockManager,
	opts ...Option,
) Service {
	s := &service{
		repo:      repo,
		generator: NewGenerator(cfg, rnd),
		poolSize:  cfg.PoolSize,
		locks:     locks,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateNewBonus adds one random bonus when the pool has room
func (s *service) GenerateNewBonus(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	release := s.locks.Acquire(PoolLockKey)
	defer release()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return false, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := tx.LockBonusPool(ctx); err != nil {
		return false, fmt.Errorf("failed to lock bonus pool: %w", err)
	}

	now := s.now()
	count, err := tx.CountAvailableBonuses(ctx, now)
	if err != nil {
		return false, fmt.Errorf("failed to count available bonuses: %w", err)
	}
	if count >= s.poolSize {
		log.Debug(LogMsgBonusPoolFull, "available", count, "pool_size", s.poolSize)
		return false, nil
	}

	b := s.generator.New(now)
	if err := tx.CreateBonus(ctx, &b); err != nil {
		return false, fmt.Errorf("failed to create bonus: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	log.Info(LogMsgBonusGenerated,
		"bonus_id", b.ID,
		"kind", b.Kind,
		"level", b.Level,
		"cost", b.Cost,
		"available_until", b.AvailableUntil)
	s.publish(ctx, event.NewBonusesChangedEvent(ReasonGenerated, b.ID))

	return true, nil
}

// Get returns the bonus or domain.ErrBonusNotFound
func (s *service) Get(ctx context.Context, bonusID string) (*domain.Bonus, error) {
	if _, err := uuid.Parse(bonusID); err != nil {
		return nil, fmt.Errorf("%w: bonus id %q", domain.ErrBonusNotFound, bonusID)
	}
	return s.repo.GetBonus(ctx, bonusID)
}

// ListAvailable returns every bonus that can still be bought
func (s *service) ListAvailable(ctx context.Context) ([]domain.Bonus, error) {
	bonuses, err := s.repo.ListAvailableBonuses(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list available bonuses: %w", err)
	}
	return bonuses, nil
}

// AvailableFor returns available bonuses minus those the player ever held an activation for
func (s *service) AvailableFor(ctx context.Context, playerID string) ([]domain.Bonus, error) {
	now := s.now()

	available, err := s.repo.ListAvailableBonuses(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list available bonuses: %w", err)
	}

	history, err := s.repo.ListActivations(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activations: %w", err)
	}

	held := make(map[string]struct{}, len(history))
	for _, a := range history {
		held[a.BonusID] = struct{}{}
	}

	result := make([]domain.Bonus, 0, len(available))
	for _, b := range available {
		if _, ok := held[b.ID]; ok {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

// Purchase buys bonusID for playerID.
// Checks run in order: not found, not available, already purchased, insufficient funds.
func (s *service) Purchase(ctx context.Context, playerID, bonusID string) (*domain.PurchaseResult, error) {
	log := logger.FromContext(ctx)

	if _, err := uuid.Parse(bonusID); err != nil {
		return nil, fmt.Errorf("%w: bonus id %q", domain.ErrBonusNotFound, bonusID)
	}

	// Bonus lock first so concurrent OTHERS purchases of the same bonus serialize
	release := s.locks.Acquire(bonusLockPrefix+bonusID, playerLockPrefix+playerID)
	defer release()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// 1. Load and validate the bonus
	b, err := tx.GetBonusForUpdate(ctx, bonusID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !b.IsAvailable(now) {
		log.Info(LogMsgPurchaseRejected, "reason", "expired", "bonus_id", bonusID, "player_id", playerID)
		return nil, fmt.Errorf("%w: bonus %s expired at %s", domain.ErrNotAvailable, bonusID, b.AvailableUntil.Format(time.RFC3339))
	}

	def, err := Lookup(b.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInconsistentState, err)
	}

	// 2. One activation per bonus per player, for all time
	already, err := tx.HasActivation(ctx, playerID, bonusID)
	if err != nil {
		return nil, fmt.Errorf("failed to check activation: %w", err)
	}
	if already {
		log.Info(LogMsgPurchaseRejected, "reason", "already_purchased", "bonus_id", bonusID, "player_id", playerID)
		return nil, fmt.Errorf("%w: bonus %s", domain.ErrAlreadyPurchased, bonusID)
	}

	// 3. Funds
	player, err := tx.GetPlayerForUpdate(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if !player.CanAfford(b.Cost) {
		log.Info(LogMsgPurchaseRejected, "reason", "insufficient_funds", "bonus_id", bonusID, "player_id", playerID)
		return nil, fmt.Errorf("%w: need %.0f, have %.0f", domain.ErrInsufficientFunds, b.Cost, player.Balance)
	}

	activeUntil := now.Add(time.Duration(b.Duration) * time.Second)

	// 4. Apply
	var recipients []string
	if def.Target == domain.TargetOthers {
		// OTHERS bonuses are single use: expire the offer before debiting
		if err := tx.UpdateBonusAvailability(ctx, bonusID, now.Add(-domain.ForceExpireOffset)); err != nil {
			return nil, fmt.Errorf("failed to expire bonus: %w", err)
		}
		if err := s.debit(ctx, tx, player, b.Cost); err != nil {
			return nil, err
		}
		if recipients, err = tx.ListOtherPlayerIDs(ctx, playerID); err != nil {
			return nil, fmt.Errorf("failed to list other players: %w", err)
		}
	} else {
		if err := s.debit(ctx, tx, player, b.Cost); err != nil {
			return nil, err
		}
		recipients = []string{playerID}
	}

	activations := make([]domain.Activation, 0, len(recipients))
	for _, id := range recipients {
		activations = append(activations, domain.Activation{
			ID:          uuid.NewString(),
			PlayerID:    id,
			BonusID:     bonusID,
			ActiveUntil: activeUntil,
			CreatedAt:   now,
		})
	}
	if len(activations) > 0 {
		if err := tx.CreateActivations(ctx, activations); err != nil {
			return nil, fmt.Errorf("failed to create activations: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	affected := recipients
	if def.Target == domain.TargetOthers {
		affected = append([]string{playerID}, recipients...)
	}

	if def.Target == domain.TargetOthers {
		log.Info(LogMsgOthersBonusApplied, "bonus_id", bonusID, "kind", b.Kind, "recipients", len(recipients))
	}
	log.Info(LogMsgBonusPurchased,
		"bonus_id", bonusID,
		"player_id", playerID,
		"kind", b.Kind,
		"target", def.Target,
		"cost", b.Cost)

	s.publish(ctx, event.NewBonusPurchasedEvent(playerID, *b, def.Target, affected))
	s.publish(ctx, event.NewPlayerUpdatedEvent(domain.PlayerUpdatedPayload{
		Action:            event.ActionBonus,
		Spent:             b.Cost,
		AffectedPlayerIDs: affected,
	}))
	if def.Target == domain.TargetOthers {
		s.publish(ctx, event.NewBonusesChangedEvent(ReasonPurchased, bonusID))
	}

	return &domain.PurchaseResult{
		Success:           true,
		BonusID:           bonusID,
		Target:            def.Target,
		ActiveUntil:       activeUntil,
		Balance:           player.Balance,
		AffectedPlayerIDs: affected,
	}, nil
}

// ActiveFor returns the player's unexpired activations
func (s *service) ActiveFor(ctx context.Context, playerID string) ([]domain.ActiveBonus, error) {
	active, err := s.repo.ListActiveBonuses(ctx, playerID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list active bonuses: %w", err)
	}
	return active, nil
}

// AllFor returns every activation the player ever received
func (s *service) AllFor(ctx context.Context, playerID string) ([]domain.ActiveBonus, error) {
	all, err := s.repo.ListActivations(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activations: %w", err)
	}
	return all, nil
}

func (s *service) debit(ctx context.Context, tx repository.BonusTx, player *domain.Player, amount float64) error {
	if err := player.Debit(amount); err != nil {
		return err
	}
	if err := tx.UpdatePlayerBalance(ctx, player.ID, player.Balance); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
