package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/IdleForge_Go/internal/cooldown"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/repository"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PlayerRepository implements repository.Player for PostgreSQL
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	p, err := getPlayer(ctx, r.db, sqlGetPlayer, id)
	if err != nil {
		return nil, err
	}
	if err := attachSites(ctx, r.db, []*domain.Player{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	p, err := getPlayer(ctx, r.db, sqlGetPlayerByUsername, username)
	if err != nil {
		return nil, err
	}
	if err := attachSites(ctx, r.db, []*domain.Player{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlayerRepository) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	rows, err := r.db.Query(ctx, sqlListPlayers)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	players, err := pgx.CollectRows(rows, scanPlayer)
	if err != nil {
		return nil, fmt.Errorf("failed to scan players: %w", err)
	}

	ptrs := make([]*domain.Player, len(players))
	for i := range players {
		ptrs[i] = &players[i]
	}
	if err := attachSites(ctx, r.db, ptrs); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *PlayerRepository) BeginTx(ctx context.Context) (repository.PlayerTx, error) {
	return begin(ctx, r.db)
}

// SiteRepository implements repository.Site for PostgreSQL
type SiteRepository struct {
	db *pgxpool.Pool
}

// NewSiteRepository creates a new site repository
func NewSiteRepository(db *pgxpool.Pool) *SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) GetSite(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.Site, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return getSite(ctx, r.db, sqlGetSite, id, kind)
}

func (r *SiteRepository) ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error) {
	return listActivations(ctx, r.db, sqlListActiveBonuses, playerID, now)
}

func (r *SiteRepository) BeginTx(ctx context.Context) (repository.SiteTx, error) {
	return begin(ctx, r.db)
}

// BonusRepository implements repository.Bonus for PostgreSQL
type BonusRepository struct {
	db *pgxpool.Pool
}

// NewBonusRepository creates a new bonus repository
func NewBonusRepository(db *pgxpool.Pool) *BonusRepository {
	return &BonusRepository{db: db}
}

func (r *BonusRepository) GetBonus(ctx context.Context, bonusID string) (*domain.Bonus, error) {
	return getBonus(ctx, r.db, sqlGetBonus, bonusID)
}

func (r *BonusRepository) ListAvailableBonuses(ctx context.Context, now time.Time) ([]domain.Bonus, error) {
	rows, err := r.db.Query(ctx, sqlListAvailable, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	return pgx.CollectRows(rows, scanBonus)
}

func (r *BonusRepository) ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error) {
	return listActivations(ctx, r.db, sqlListActiveBonuses, playerID, now)
}

func (r *BonusRepository) ListActivations(ctx context.Context, playerID string) ([]domain.ActiveBonus, error) {
	return listActivations(ctx, r.db, sqlListActivations, playerID)
}

func (r *BonusRepository) BeginTx(ctx context.Context) (repository.BonusTx, error) {
	return begin(ctx, r.db)
}

// storeTx implements repository.PlayerTx, repository.SiteTx and repository.BonusTx
type storeTx struct {
	tx pgx.Tx
}

func begin(ctx context.Context, db *pgxpool.Pool) (*storeTx, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &storeTx{tx: tx}, nil
}

// Commit commits the transaction
func (t *storeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction; a closed transaction reports repository.ErrTxClosed
func (t *storeTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return repository.ErrTxClosed
		}
		return err
	}
	return nil
}

func (t *storeTx) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return getPlayer(ctx, t.tx, sqlGetPlayerByUsername, username)
}

func (t *storeTx) CreatePlayer(ctx context.Context, p *domain.Player) error {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return fmt.Errorf("%w: player id %q", domain.ErrInvalidInput, p.ID)
	}
	if _, err := t.tx.Exec(ctx, sqlInsertPlayer, id, p.Username, p.Balance, p.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	for _, s := range p.Sites {
		siteID, err := uuid.Parse(s.ID)
		if err != nil {
			return fmt.Errorf("%w: site id %q", domain.ErrInvalidInput, s.ID)
		}
		if _, err := t.tx.Exec(ctx, sqlInsertSite, siteID, id, string(s.Kind), s.Workers, s.Amount, s.Level, s.LastGather); err != nil {
			return fmt.Errorf("failed to insert %s site: %w", s.Kind, err)
		}
	}
	return nil
}

func (t *storeTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return getPlayer(ctx, t.tx, sqlGetPlayerForUpdate, id)
}

func (t *storeTx) UpdatePlayerBalance(ctx context.Context, playerID string, balance float64) error {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return err
	}
	return execOne(ctx, t.tx, sqlUpdatePlayerBalance, domain.ErrPlayerNotFound, id, balance)
}

func (t *storeTx) GetSiteForUpdate(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.Site, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	return getSite(ctx, t.tx, sqlGetSiteForUpdate, id, kind)
}

func (t *storeTx) ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error) {
	return listActivations(ctx, t.tx, sqlListActiveBonuses, playerID, now)
}

func (t *storeTx) UpdateSite(ctx context.Context, s *domain.Site) error {
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return fmt.Errorf("%w: site id %q", domain.ErrInconsistentState, s.ID)
	}
	return execOne(ctx, t.tx, sqlUpdateSite, domain.ErrInconsistentState, id, s.Workers, s.Amount, s.Level, s.LastGather)
}

func (t *storeTx) LockBonusPool(ctx context.Context) error {
	_, err := t.tx.Exec(ctx, sqlAdvisoryLock, cooldown.HashLockKey(bonusPoolLockName))
	return err
}

func (t *storeTx) CountAvailableBonuses(ctx context.Context, now time.Time) (int, error) {
	var n int
	if err := t.tx.QueryRow(ctx, sqlCountAvailable, now).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (t *storeTx) CreateBonus(ctx context.Context, b *domain.Bonus) error {
	id, err := uuid.Parse(b.ID)
	if err != nil {
		return fmt.Errorf("%w: bonus id %q", domain.ErrInvalidInput, b.ID)
	}
	_, err = t.tx.Exec(ctx, sqlInsertBonus, id, string(b.Kind), b.Level, b.AvailableUntil, b.Cost, b.Duration, b.CreatedAt)
	return err
}

func (t *storeTx) GetBonusForUpdate(ctx context.Context, bonusID string) (*domain.Bonus, error) {
	return getBonus(ctx, t.tx, sqlGetBonusForUpdate, bonusID)
}

func (t *storeTx) UpdateBonusAvailability(ctx context.Context, bonusID string, availableUntil time.Time) error {
	id, err := uuid.Parse(bonusID)
	if err != nil {
		return fmt.Errorf("%w: %q", domain.ErrBonusNotFound, bonusID)
	}
	return execOne(ctx, t.tx, sqlUpdateAvailableTime, domain.ErrBonusNotFound, id, availableUntil)
}

func (t *storeTx) HasActivation(ctx context.Context, playerID, bonusID string) (bool, error) {
	pid, err := parsePlayerUUID(playerID)
	if err != nil {
		return false, err
	}
	bid, err := uuid.Parse(bonusID)
	if err != nil {
		return false, nil
	}
	var exists bool
	if err := t.tx.QueryRow(ctx, sqlHasActivation, pid, bid).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (t *storeTx) ListOtherPlayerIDs(ctx context.Context, playerID string) ([]string, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	rows, err := t.tx.Query(ctx, sqlListOtherPlayerIDs, id)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (t *storeTx) CreateActivations(ctx context.Context, activations []domain.Activation) error {
	batch := &pgx.Batch{}
	for _, a := range activations {
		id, err := uuid.Parse(a.ID)
		if err != nil {
			return fmt.Errorf("%w: activation id %q", domain.ErrInvalidInput, a.ID)
		}
		pid, err := parsePlayerUUID(a.PlayerID)
		if err != nil {
			return err
		}
		bid, err := uuid.Parse(a.BonusID)
		if err != nil {
			return fmt.Errorf("%w: %q", domain.ErrBonusNotFound, a.BonusID)
		}
		batch.Queue(sqlInsertActivation, id, pid, bid, a.ActiveUntil, a.CreatedAt)
	}
	return t.tx.SendBatch(ctx, batch).Close()
}
