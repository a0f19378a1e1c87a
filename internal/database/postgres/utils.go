package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// parsePlayerUUID maps a malformed id to domain.ErrPlayerNotFound; no such row can exist
func parsePlayerUUID(playerID string) (uuid.UUID, error) {
	u, err := uuid.Parse(playerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", domain.ErrPlayerNotFound, playerID)
	}
	return u, nil
}

func scanPlayer(row pgx.CollectableRow) (domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.Username, &p.Balance, &p.CreatedAt)
	return p, err
}

func scanSite(row pgx.CollectableRow) (domain.Site, error) {
	var s domain.Site
	var kind string
	err := row.Scan(&s.ID, &s.PlayerID, &kind, &s.Workers, &s.Amount, &s.Level, &s.LastGather)
	s.Kind = domain.SiteKind(kind)
	return s, err
}

func scanBonus(row pgx.CollectableRow) (domain.Bonus, error) {
	var b domain.Bonus
	var kind string
	err := row.Scan(&b.ID, &kind, &b.Level, &b.AvailableUntil, &b.Cost, &b.Duration, &b.CreatedAt)
	b.Kind = domain.BonusKind(kind)
	return b, err
}

func scanActiveBonus(row pgx.CollectableRow) (domain.ActiveBonus, error) {
	var a domain.ActiveBonus
	var kind string
	err := row.Scan(
		&a.ID, &a.PlayerID, &a.BonusID, &a.ActiveUntil, &a.Activation.CreatedAt,
		&a.Bonus.ID, &kind, &a.Bonus.Level, &a.Bonus.AvailableUntil, &a.Bonus.Cost, &a.Bonus.Duration, &a.Bonus.CreatedAt,
	)
	a.Bonus.Kind = domain.BonusKind(kind)
	return a, err
}

func getPlayer(ctx context.Context, q querier, query string, args ...any) (*domain.Player, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanPlayer)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan player: %w", err)
	}
	return &p, nil
}

func getSite(ctx context.Context, q querier, query string, playerID uuid.UUID, kind domain.SiteKind) (*domain.Site, error) {
	rows, err := q.Query(ctx, query, playerID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to get site: %w", err)
	}
	s, err := pgx.CollectExactlyOneRow(rows, scanSite)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s site of player %s", domain.ErrNotFound, kind, playerID)
		}
		return nil, fmt.Errorf("failed to scan site: %w", err)
	}
	return &s, nil
}

func getBonus(ctx context.Context, q querier, query, bonusID string) (*domain.Bonus, error) {
	id, err := uuid.Parse(bonusID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrBonusNotFound, bonusID)
	}
	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get bonus: %w", err)
	}
	b, err := pgx.CollectExactlyOneRow(rows, scanBonus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBonusNotFound
		}
		return nil, fmt.Errorf("failed to scan bonus: %w", err)
	}
	return &b, nil
}

// listActivations runs an activation query whose first parameter is the player id
func listActivations(ctx context.Context, q querier, query, playerID string, extra ...any) ([]domain.ActiveBonus, error) {
	id, err := parsePlayerUUID(playerID)
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, query, append([]any{id}, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activations: %w", err)
	}
	return pgx.CollectRows(rows, scanActiveBonus)
}

// attachSites loads the sites of every player in one query
func attachSites(ctx context.Context, q querier, players []*domain.Player) error {
	if len(players) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(players))
	byID := make(map[string]*domain.Player, len(players))
	for _, p := range players {
		u, err := uuid.Parse(p.ID)
		if err != nil {
			return fmt.Errorf("%w: player id %q", domain.ErrInconsistentState, p.ID)
		}
		ids = append(ids, u)
		byID[p.ID] = p
	}

	rows, err := q.Query(ctx, sqlListSites, ids)
	if err != nil {
		return fmt.Errorf("failed to list sites: %w", err)
	}
	sites, err := pgx.CollectRows(rows, scanSite)
	if err != nil {
		return fmt.Errorf("failed to scan sites: %w", err)
	}
	for _, s := range sites {
		if p, ok := byID[s.PlayerID]; ok {
			p.Sites = append(p.Sites, s)
		}
	}
	return nil
}

// execOne runs a statement that must touch exactly one row, returning notFound otherwise
func execOne(ctx context.Context, q querier, query string, notFound error, args ...any) error {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() != 1 {
		return notFound
	}
	return nil
}
