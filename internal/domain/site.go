package domain

import "time"

// SiteKind identifies a resource site variant (lumberyard, mine, smithy)
type SiteKind string

// Valid reports whether k is one of the known site kinds
func (k SiteKind) Valid() bool {
	switch k {
	case SiteWood, SiteStone, SiteIron:
		return true
	}
	return false
}

// Site is a per-player resource gathering facility
type Site struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	Kind       SiteKind  `json:"kind"`
	Workers    int       `json:"workers"`
	Amount     float64   `json:"amount"`
	Level      int       `json:"level"`
	LastGather time.Time `json:"last_gather"`
}

// SiteView is a site together with its current price quotes
type SiteView struct {
	Site
	Name            string    `json:"name"`
	WorkerName      string    `json:"worker_name"`
	Cost1           float64   `json:"cost_1"`
	Cost10          float64   `json:"cost_10"`
	Cost100         float64   `json:"cost_100"`
	CostLevel       float64   `json:"cost_level"`
	LevelMultiplier float64   `json:"level_multiplier"`
	AvailableAt     time.Time `json:"available_at"`
}

// SiteResult is returned by every site operation
type SiteResult struct {
	Player            Player   `json:"player"`
	Site              Site     `json:"site"`
	Price             float64  `json:"price,omitempty"`
	Gained            float64  `json:"gained,omitempty"`
	Revenue           float64  `json:"revenue,omitempty"`
	AffectedPlayerIDs []string `json:"affected_player_ids"`
}
