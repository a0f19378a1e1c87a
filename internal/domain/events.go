package domain

// PlayerUpdatedPayload tells the notification layer whose state changed
type PlayerUpdatedPayload struct {
	Action            string   `json:"action"`
	Kind              SiteKind `json:"kind,omitempty"`
	Quantity          int      `json:"quantity,omitempty"`
	Spent             float64  `json:"spent,omitempty"`
	Earned            float64  `json:"earned,omitempty"`
	Gained            float64  `json:"gained,omitempty"`
	AffectedPlayerIDs []string `json:"affected_player_ids"`
	Timestamp         int64    `json:"timestamp"`
}

// BonusPurchasedPayload is published after a bonus purchase commits
type BonusPurchasedPayload struct {
	BuyerID           string      `json:"buyer_id"`
	BonusID           string      `json:"bonus_id"`
	Kind              BonusKind   `json:"kind"`
	Target            BonusTarget `json:"target"`
	AffectedPlayerIDs []string    `json:"affected_player_ids"`
	Timestamp         int64       `json:"timestamp"`
}

// BonusesChangedPayload is published when the set of available bonuses changes
type BonusesChangedPayload struct {
	Reason    string `json:"reason"`
	BonusID   string `json:"bonus_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
