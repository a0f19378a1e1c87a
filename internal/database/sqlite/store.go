// Package sqlite provides an embedded single-file store for development and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/osse101/IdleForge_Go/internal/database"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/repository"
)

// DB wraps a SQLite connection
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at path and applies migrations.
// A single connection is used so transactions serialize and MemoryPath keeps one database.
func Open(ctx context.Context, path string) (*DB, error) {
	conn, err := sqlx.Open(database.DriverSQLite, path+dsnPragmas)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err := database.Migrate(ctx, database.DriverSQLite, conn.DB); err != nil {
		conn.Close()
		return nil, err
	}
	return &DB{conn: conn}, nil
}

// SQL returns the underlying handle for migration tooling
func (db *DB) SQL() *sql.DB {
	return db.conn.DB
}

// Ping checks the connection
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// Players returns the player repository
func (db *DB) Players() *PlayerRepository { return &PlayerRepository{db: db.conn} }

// Sites returns the site repository
func (db *DB) Sites() *SiteRepository { return &SiteRepository{db: db.conn} }

// Bonuses returns the bonus repository
func (db *DB) Bonuses() *BonusRepository { return &BonusRepository{db: db.conn} }

// PlayerRepository implements repository.Player
type PlayerRepository struct {
	db *sqlx.DB
}

func (r *PlayerRepository) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayerWithSites(ctx, r.db, sqlGetPlayer, playerID)
}

func (r *PlayerRepository) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	return getPlayerWithSites(ctx, r.db, sqlGetPlayerByUsername, username)
}

func (r *PlayerRepository) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	var rows []playerRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, sqlListPlayers); err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	players := make([]domain.Player, len(rows))
	ptrs := make([]*domain.Player, len(rows))
	for i, row := range rows {
		players[i] = row.toDomain()
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

// SiteRepository implements repository.Site
type SiteRepository struct {
	db *sqlx.DB
}

func (r *SiteRepository) GetSite(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.Site, error) {
	return getSite(ctx, r.db, playerID, kind)
}

func (r *SiteRepository) ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error) {
	return listActivations(ctx, r.db, sqlListActiveBonuses, playerID, toMillis(now))
}

func (r *SiteRepository) BeginTx(ctx context.Context) (repository.SiteTx, error) {
	return begin(ctx, r.db)
}

// BonusRepository implements repository.Bonus
type BonusRepository struct {
	db *sqlx.DB
}

func (r *BonusRepository) GetBonus(ctx context.Context, bonusID string) (*domain.Bonus, error) {
	return getBonus(ctx, r.db, bonusID)
}

func (r *BonusRepository) ListAvailableBonuses(ctx context.Context, now time.Time) ([]domain.Bonus, error) {
	var rows []bonusRow
	if err := sqlx.SelectContext(ctx, r.db, &rows, sqlListAvailable, toMillis(now)); err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	out := make([]domain.Bonus, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *BonusRepository) ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error) {
	return listActivations(ctx, r.db, sqlListActiveBonuses, playerID, toMillis(now))
}

func (r *BonusRepository) ListActivations(ctx context.Context, playerID string) ([]domain.ActiveBonus, error) {
	return listActivations(ctx, r.db, sqlListActivations, playerID)
}

func (r *BonusRepository) BeginTx(ctx context.Context) (repository.BonusTx, error) {
	return begin(ctx, r.db)
}

// storeTx implements repository.PlayerTx, repository.SiteTx and repository.BonusTx.
// The single connection makes every transaction exclusive, so ForUpdate reads are plain selects.
type storeTx struct {
	tx *sqlx.Tx
}

func begin(ctx context.Context, db *sqlx.DB) (*storeTx, error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &storeTx{tx: tx}, nil
}

func (t *storeTx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t *storeTx) Rollback(_ context.Context) error {
	if err := t.tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
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
	if _, err := t.tx.NamedExecContext(ctx, sqlInsertPlayer, newPlayerRow(p)); err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	for i := range p.Sites {
		if _, err := t.tx.NamedExecContext(ctx, sqlInsertSite, newSiteRow(&p.Sites[i])); err != nil {
			return fmt.Errorf("failed to insert %s site: %w", p.Sites[i].Kind, err)
		}
	}
	return nil
}

func (t *storeTx) GetPlayerForUpdate(ctx context.Context, playerID string) (*domain.Player, error) {
	return getPlayer(ctx, t.tx, sqlGetPlayer, playerID)
}

func (t *storeTx) UpdatePlayerBalance(ctx context.Context, playerID string, balance float64) error {
	res, err := t.tx.ExecContext(ctx, sqlUpdatePlayerBalance, balance, playerID)
	return expectOne(res, err, domain.ErrPlayerNotFound)
}

func (t *storeTx) GetSiteForUpdate(ctx context.Context, playerID string, kind domain.SiteKind) (*domain.Site, error) {
	return getSite(ctx, t.tx, playerID, kind)
}

func (t *storeTx) ListActiveBonuses(ctx context.Context, playerID string, now time.Time) ([]domain.ActiveBonus, error) {
	return listActivations(ctx, t.tx, sqlListActiveBonuses, playerID, toMillis(now))
}

func (t *storeTx) UpdateSite(ctx context.Context, s *domain.Site) error {
	res, err := t.tx.NamedExecContext(ctx, sqlUpdateSite, newSiteRow(s))
	return expectOne(res, err, domain.ErrInconsistentState)
}

// LockBonusPool is a no-op: the store already allows one transaction at a time
func (t *storeTx) LockBonusPool(_ context.Context) error {
	return nil
}

func (t *storeTx) CountAvailableBonuses(ctx context.Context, now time.Time) (int, error) {
	var n int
	if err := t.tx.GetContext(ctx, &n, sqlCountAvailable, toMillis(now)); err != nil {
		return 0, err
	}
	return n, nil
}

func (t *storeTx) CreateBonus(ctx context.Context, b *domain.Bonus) error {
	_, err := t.tx.NamedExecContext(ctx, sqlInsertBonus, newBonusRow(b))
	return err
}

func (t *storeTx) GetBonusForUpdate(ctx context.Context, bonusID string) (*domain.Bonus, error) {
	return getBonus(ctx, t.tx, bonusID)
}

func (t *storeTx) UpdateBonusAvailability(ctx context.Context, bonusID string, availableUntil time.Time) error {
	res, err := t.tx.ExecContext(ctx, sqlUpdateAvailableTime, toMillis(availableUntil), bonusID)
	return expectOne(res, err, domain.ErrBonusNotFound)
}

func (t *storeTx) HasActivation(ctx context.Context, playerID, bonusID string) (bool, error) {
	var exists bool
	if err := t.tx.GetContext(ctx, &exists, sqlHasActivation, playerID, bonusID); err != nil {
		return false, err
	}
	return exists, nil
}

func (t *storeTx) ListOtherPlayerIDs(ctx context.Context, playerID string) ([]string, error) {
	var ids []string
	if err := t.tx.SelectContext(ctx, &ids, sqlListOtherPlayerIDs, playerID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (t *storeTx) CreateActivations(ctx context.Context, activations []domain.Activation) error {
	for i := range activations {
		if _, err := t.tx.NamedExecContext(ctx, sqlInsertActivation, newActivationRow(&activations[i])); err != nil {
			return fmt.Errorf("failed to insert activation: %w", err)
		}
	}
	return nil
}

func getPlayer(ctx context.Context, q sqlx.QueryerContext, query string, arg any) (*domain.Player, error) {
	var row playerRow
	if err := sqlx.GetContext(ctx, q, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	p := row.toDomain()
	return &p, nil
}

func getPlayerWithSites(ctx context.Context, q sqlx.QueryerContext, query string, arg any) (*domain.Player, error) {
	p, err := getPlayer(ctx, q, query, arg)
	if err != nil {
		return nil, err
	}
	if err := attachSites(ctx, q, []*domain.Player{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func getSite(ctx context.Context, q sqlx.QueryerContext, playerID string, kind domain.SiteKind) (*domain.Site, error) {
	var row siteRow
	if err := sqlx.GetContext(ctx, q, &row, sqlGetSite, playerID, string(kind)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s site of player %s", domain.ErrNotFound, kind, playerID)
		}
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	s := row.toDomain()
	return &s, nil
}

func getBonus(ctx context.Context, q sqlx.QueryerContext, bonusID string) (*domain.Bonus, error) {
	var row bonusRow
	if err := sqlx.GetContext(ctx, q, &row, sqlGetBonus, bonusID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBonusNotFound
		}
		return nil, fmt.Errorf("failed to get bonus: %w", err)
	}
	b := row.toDomain()
	return &b, nil
}

func listActivations(ctx context.Context, q sqlx.QueryerContext, query, playerID string, extra ...any) ([]domain.ActiveBonus, error) {
	var rows []activeBonusRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, append([]any{playerID}, extra...)...); err != nil {
		return nil, fmt.Errorf("failed to list activations: %w", err)
	}
	out := make([]domain.ActiveBonus, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func attachSites(ctx context.Context, q sqlx.QueryerContext, players []*domain.Player) error {
	if len(players) == 0 {
		return nil
	}
	ids := make([]string, len(players))
	byID := make(map[string]*domain.Player, len(players))
	for i, p := range players {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	query, args, err := sqlx.In(sqlListSites, ids)
	if err != nil {
		return err
	}
	var rows []siteRow
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}
	for _, row := range rows {
		if p, ok := byID[row.PlayerID]; ok {
			p.Sites = append(p.Sites, row.toDomain())
		}
	}
	return nil
}

func expectOne(res sql.Result, err error, notFound error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n != 1 {
		return notFound
	}
	return nil
}
