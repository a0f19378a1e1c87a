package site

import (
	"fmt"
	"time"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// KindConfig parametrizes the engine for one site kind
type KindConfig struct {
	Kind             domain.SiteKind    `yaml:"-"`
	SiteName         string             `yaml:"site_name" validate:"required"`
	WorkerName       string             `yaml:"worker_name" validate:"required"`
	WorkerBasePrice  float64            `yaml:"worker_base_price" validate:"gt=0"`
	LevelBasePrice   float64            `yaml:"level_base_price" validate:"gt=0"`
	Cooldown         time.Duration      `yaml:"cooldown" validate:"gt=0"`
	BaseGatherAmount float64            `yaml:"base_gather_amount" validate:"gt=0"`
	SellPrice        float64            `yaml:"sell_price" validate:"gt=0"`
	DefaultWorkers   int                `yaml:"default_workers" validate:"min=0"`
	PurchaseKinds    []domain.BonusKind `yaml:"-"`
	GatherKinds      []domain.BonusKind `yaml:"-"`
}

// Kinds maps every site kind to its configuration
type Kinds map[domain.SiteKind]KindConfig

// Get returns the config for kind or domain.ErrUnknownSiteKind
func (k Kinds) Get(kind domain.SiteKind) (KindConfig, error) {
	cfg, ok := k[kind]
	if !ok {
		return KindConfig{}, fmt.Errorf("%w: %q", domain.ErrUnknownSiteKind, kind)
	}
	return cfg, nil
}

// DefaultKinds returns the standard lumberyard, mine and smithy settings
func DefaultKinds() Kinds {
	return Kinds{
		domain.SiteWood: {
			Kind:             domain.SiteWood,
			SiteName:         "Lumberyard",
			WorkerName:       "Lumberjack",
			WorkerBasePrice:  100,
			LevelBasePrice:   1000,
			Cooldown:         10 * time.Second,
			BaseGatherAmount: 1,
			SellPrice:        5,
			DefaultWorkers:   1,
		},
		domain.SiteStone: {
			Kind:             domain.SiteStone,
			SiteName:         "Mine",
			WorkerName:       "Miner",
			WorkerBasePrice:  1000,
			LevelBasePrice:   10000,
			Cooldown:         30 * time.Second,
			BaseGatherAmount: 1,
			SellPrice:        60,
		},
		domain.SiteIron: {
			Kind:             domain.SiteIron,
			SiteName:         "Smithy",
			WorkerName:       "Blacksmith",
			WorkerBasePrice:  10000,
			LevelBasePrice:   100000,
			Cooldown:         60 * time.Second,
			BaseGatherAmount: 1,
			SellPrice:        700,
		},
	}.WithBonusKinds()
}

// WithBonusKinds fills the relevant bonus kinds of every entry; they are fixed per kind
func (k Kinds) WithBonusKinds() Kinds {
	out := make(Kinds, len(k))
	for kind, cfg := range k {
		cfg.Kind = kind
		cfg.PurchaseKinds = []domain.BonusKind{domain.BonusSale, saleKinds[kind], domain.BonusTax}
		cfg.GatherKinds = []domain.BonusKind{domain.BonusEfficiency, efficiencyKinds[kind], domain.BonusFreeze}
		out[kind] = cfg
	}
	return out
}

var saleKinds = map[domain.SiteKind]domain.BonusKind{
	domain.SiteWood:  domain.BonusLumberjackSale,
	domain.SiteStone: domain.BonusMinerSale,
	domain.SiteIron:  domain.BonusBlacksmithSale,
}

var efficiencyKinds = map[domain.SiteKind]domain.BonusKind{
	domain.SiteWood:  domain.BonusWoodEfficiency,
	domain.SiteStone: domain.BonusStoneEfficiency,
	domain.SiteIron:  domain.BonusIronEfficiency,
}
