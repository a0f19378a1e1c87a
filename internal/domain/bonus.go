package domain

import "time"

// BonusKind enumerates the purchasable bonus effects
type BonusKind string

// Bonus kinds
const (
	BonusEfficiency      BonusKind = "EFFICIENCY"
	BonusWoodEfficiency  BonusKind = "WOOD_EFFICIENCY"
	BonusStoneEfficiency BonusKind = "STONE_EFFICIENCY"
	BonusIronEfficiency  BonusKind = "IRON_EFFICIENCY"
	BonusSale            BonusKind = "SALE"
	BonusLumberjackSale  BonusKind = "LUMBERJACK_SALE"
	BonusMinerSale       BonusKind = "MINER_SALE"
	BonusBlacksmithSale  BonusKind = "BLACKSMITH_SALE"
	BonusFreeze          BonusKind = "FREEZE"
	BonusTax             BonusKind = "TAX"
)

// AllBonusKinds lists every bonus kind; generation picks uniformly from it
var AllBonusKinds = []BonusKind{
	BonusWoodEfficiency,
	BonusStoneEfficiency,
	BonusIronEfficiency,
	BonusEfficiency,
	BonusSale,
	BonusLumberjackSale,
	BonusMinerSale,
	BonusBlacksmithSale,
	BonusFreeze,
	BonusTax,
}

// BonusTarget says who a bonus affects
type BonusTarget string

const (
	TargetSelf   BonusTarget = "SELF"
	TargetOthers BonusTarget = "OTHERS"
)

// Bonus is a time-limited purchasable modifier
type Bonus struct {
	ID             string    `json:"id"`
	Kind           BonusKind `json:"kind"`
	Level          int       `json:"level"`
	AvailableUntil time.Time `json:"available_until"`
	Cost           float64   `json:"cost"`
	Duration       int       `json:"duration"` // seconds
	CreatedAt      time.Time `json:"created_at"`
}

// IsAvailable reports whether the bonus can still be bought at now
func (b *Bonus) IsAvailable(now time.Time) bool {
	return b.AvailableUntil.After(now)
}

// Activation records that a player benefits from a bonus until ActiveUntil
type Activation struct {
	ID          string    `json:"id"`
	PlayerID    string    `json:"player_id"`
	BonusID     string    `json:"bonus_id"`
	ActiveUntil time.Time `json:"active_until"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsActive reports whether the activation still applies at now
func (a *Activation) IsActive(now time.Time) bool {
	return a.ActiveUntil.After(now)
}

// ActiveBonus is an activation joined with its bonus
type ActiveBonus struct {
	Activation
	Bonus Bonus `json:"bonus"`
}

// BonusView is a bonus with catalog-derived fields for clients
type BonusView struct {
	Bonus
	Target      BonusTarget `json:"target"`
	Multiplier  float64     `json:"multiplier"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
}

// PurchaseResult is returned by a successful bonus purchase
type PurchaseResult struct {
	Success           bool        `json:"success"`
	BonusID           string      `json:"bonus_id"`
	Target            BonusTarget `json:"target"`
	ActiveUntil       time.Time   `json:"active_until"`
	Balance           float64     `json:"balance"`
	AffectedPlayerIDs []string    `json:"affected_player_ids"`
}
