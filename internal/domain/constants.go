package domain

import "time"

// Site kinds - stable code identifiers for the three resource sites
const (
	SiteWood  SiteKind = "wood"
	SiteStone SiteKind = "stone"
	SiteIron  SiteKind = "iron"
)

// Site level bounds
const (
	MinSiteLevel = 1
	MaxSiteLevel = 5
)

// Bonus level bounds
const (
	MinBonusLevel = 1
	MaxBonusLevel = 3
)

// MaxWorkersPerPurchase caps a single buy-worker request
const MaxWorkersPerPurchase = 1000

// ForceExpireOffset is subtracted from "now" when an OTHERS bonus is retired on purchase
const ForceExpireOffset = time.Second

// AllSiteKinds lists every site kind in display order
var AllSiteKinds = []SiteKind{SiteWood, SiteStone, SiteIron}
