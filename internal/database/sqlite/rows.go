package sqlite

import (
	"time"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// Timestamps are stored as unix milliseconds
func toMillis(t time.Time) int64 { return t.UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

type playerRow struct {
	ID        string  `db:"id"`
	Username  string  `db:"username"`
	Balance   float64 `db:"balance"`
	CreatedAt int64   `db:"created_at"`
}

func newPlayerRow(p *domain.Player) playerRow {
	return playerRow{ID: p.ID, Username: p.Username, Balance: p.Balance, CreatedAt: toMillis(p.CreatedAt)}
}

func (r playerRow) toDomain() domain.Player {
	return domain.Player{ID: r.ID, Username: r.Username, Balance: r.Balance, CreatedAt: fromMillis(r.CreatedAt)}
}

type siteRow struct {
	ID         string  `db:"id"`
	PlayerID   string  `db:"player_id"`
	Kind       string  `db:"kind"`
	Workers    int     `db:"workers"`
	Amount     float64 `db:"amount"`
	Level      int     `db:"level"`
	LastGather int64   `db:"last_gather"`
}

func newSiteRow(s *domain.Site) siteRow {
	return siteRow{
		ID:         s.ID,
		PlayerID:   s.PlayerID,
		Kind:       string(s.Kind),
		Workers:    s.Workers,
		Amount:     s.Amount,
		Level:      s.Level,
		LastGather: toMillis(s.LastGather),
	}
}

func (r siteRow) toDomain() domain.Site {
	return domain.Site{
		ID:         r.ID,
		PlayerID:   r.PlayerID,
		Kind:       domain.SiteKind(r.Kind),
		Workers:    r.Workers,
		Amount:     r.Amount,
		Level:      r.Level,
		LastGather: fromMillis(r.LastGather),
	}
}

type bonusRow struct {
	ID             string  `db:"id"`
	Kind           string  `db:"kind"`
	Level          int     `db:"level"`
	AvailableUntil int64   `db:"available_until"`
	Cost           float64 `db:"cost"`
	Duration       int     `db:"duration"`
	CreatedAt      int64   `db:"created_at"`
}

func newBonusRow(b *domain.Bonus) bonusRow {
	return bonusRow{
		ID:             b.ID,
		Kind:           string(b.Kind),
		Level:          b.Level,
		AvailableUntil: toMillis(b.AvailableUntil),
		Cost:           b.Cost,
		Duration:       b.Duration,
		CreatedAt:      toMillis(b.CreatedAt),
	}
}

func (r bonusRow) toDomain() domain.Bonus {
	return domain.Bonus{
		ID:             r.ID,
		Kind:           domain.BonusKind(r.Kind),
		Level:          r.Level,
		AvailableUntil: fromMillis(r.AvailableUntil),
		Cost:           r.Cost,
		Duration:       r.Duration,
		CreatedAt:      fromMillis(r.CreatedAt),
	}
}

type activationRow struct {
	ID          string `db:"id"`
	PlayerID    string `db:"player_id"`
	BonusID     string `db:"bonus_id"`
	ActiveUntil int64  `db:"active_until"`
	CreatedAt   int64  `db:"created_at"`
}

func newActivationRow(a *domain.Activation) activationRow {
	return activationRow{
		ID:          a.ID,
		PlayerID:    a.PlayerID,
		BonusID:     a.BonusID,
		ActiveUntil: toMillis(a.ActiveUntil),
		CreatedAt:   toMillis(a.CreatedAt),
	}
}

// activeBonusRow matches sqlSelectActivation
type activeBonusRow struct {
	activationRow
	BonusKind           string  `db:"bonus_kind"`
	BonusLevel          int     `db:"bonus_level"`
	BonusAvailableUntil int64   `db:"bonus_available_until"`
	BonusCost           float64 `db:"bonus_cost"`
	BonusDuration       int     `db:"bonus_duration"`
	BonusCreatedAt      int64   `db:"bonus_created_at"`
}

func (r activeBonusRow) toDomain() domain.ActiveBonus {
	return domain.ActiveBonus{
		Activation: domain.Activation{
			ID:          r.ID,
			PlayerID:    r.PlayerID,
			BonusID:     r.BonusID,
			ActiveUntil: fromMillis(r.ActiveUntil),
			CreatedAt:   fromMillis(r.CreatedAt),
		},
		Bonus: domain.Bonus{
			ID:             r.BonusID,
			Kind:           domain.BonusKind(r.BonusKind),
			Level:          r.BonusLevel,
			AvailableUntil: fromMillis(r.BonusAvailableUntil),
			Cost:           r.BonusCost,
			Duration:       r.BonusDuration,
			CreatedAt:      fromMillis(r.BonusCreatedAt),
		},
	}
}
