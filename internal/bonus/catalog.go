package bonus

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// Definition describes how a bonus kind behaves
type Definition struct {
	Kind        domain.BonusKind
	Target      domain.BonusTarget
	Multipliers [domain.MaxBonusLevel]float64
	Description string
}

var catalog = map[domain.BonusKind]Definition{
	domain.BonusEfficiency: {
		Target:      domain.TargetSelf,
		Multipliers: [3]float64{1.5, 3, 4.5},
		Description: "Increase the efficiency of all resource gathering for yourself",
	},
	domain.BonusWoodEfficiency: {
		Target:      domain.TargetSelf,
		Multipliers: [3]float64{2.5, 5, 10},
		Description: "Increase the efficiency of wood gathering for yourself",
	},
	domain.BonusStoneEfficiency: {
		Target:      domain.TargetSelf,
		Multipliers: [3]float64{2.5, 5, 10},
		Description: "Increase the efficiency of stone gathering for yourself",
	},
	domain.BonusIronEfficiency: {
		Target:      domain.TargetSelf,
		Multipliers: [3]float64{2.5, 5, 10},
		Description: "Increase the efficiency of iron gathering for yourself",
	},
	domain.BonusSale: {
		Target:      domain.TargetSelf,
		Multipliers: [3]float64{0.8, 0.65, 0.5},
		Description: "All resource collectors are on sale for yourself",
	},
	domain.BonusLumberjackSale: {
		Target:      domain.TargetSelf,
		Multipliers: [3]float64{0.75, 0.5, 0.25},
		Description: "Lumberjacks are on sale for yourself",
	},
	domain.BonusMinerSale: {
		Target:      domain.TargetSelf,
		Multipliers: [3]float64{0.75, 0.5, 0.25},
		Description: "Miners are on sale for yourself",
	},
	domain.BonusBlacksmithSale: {
		Target:      domain.TargetSelf,
		Multipliers: [3]float64{0.75, 0.5, 0.25},
		Description: "Blacksmiths are on sale for yourself",
	},
	domain.BonusFreeze: {
		Target:      domain.TargetOthers,
		Multipliers: [3]float64{0.75, 0.5, 0.2},
		Description: "Slow down resource gathering for all other players",
	},
	domain.BonusTax: {
		Target:      domain.TargetOthers,
		Multipliers: [3]float64{1.25, 2, 4},
		Description: "Increase resource collectors cost for all other players",
	},
}

var titleCaser = cases.Title(language.English)

func init() {
	for kind, def := range catalog {
		def.Kind = kind
		catalog[kind] = def
	}
}

// Lookup returns the catalog entry for kind
func Lookup(kind domain.BonusKind) (Definition, error) {
	def, ok := catalog[kind]
	if !ok {
		return Definition{}, fmt.Errorf("%w: unknown bonus kind %q", domain.ErrInvalidInput, kind)
	}
	return def, nil
}

// Multiplier returns the effect factor for kind at level.
// A level outside 1..3 or an unknown kind is an inconsistent stored state.
func Multiplier(kind domain.BonusKind, level int) (float64, error) {
	def, ok := catalog[kind]
	if !ok {
		return 0, fmt.Errorf("%w: unknown bonus kind %q", domain.ErrInconsistentState, kind)
	}
	if level < domain.MinBonusLevel || level > domain.MaxBonusLevel {
		return 0, fmt.Errorf("%w: bonus level %d out of range", domain.ErrInconsistentState, level)
	}
	return def.Multipliers[level-1], nil
}

// TargetOf returns who a bonus of kind affects; unknown kinds default to SELF
func TargetOf(kind domain.BonusKind) domain.BonusTarget {
	if def, ok := catalog[kind]; ok {
		return def.Target
	}
	return domain.TargetSelf
}

// DisplayName renders a kind such as WOOD_EFFICIENCY as "Wood Efficiency"
func DisplayName(kind domain.BonusKind) string {
	return titleCaser.String(strings.ReplaceAll(string(kind), "_", " "))
}

// View decorates a bonus with its catalog fields
func View(b domain.Bonus) domain.BonusView {
	v := domain.BonusView{Bonus: b, Name: DisplayName(b.Kind)}
	if def, ok := catalog[b.Kind]; ok {
		v.Target = def.Target
		v.Description = def.Description
	}
	if m, err := Multiplier(b.Kind, b.Level); err == nil {
		v.Multiplier = m
	}
	return v
}

// Views decorates a slice of bonuses
func Views(bonuses []domain.Bonus) []domain.BonusView {
	views := make([]domain.BonusView, 0, len(bonuses))
	for _, b := range bonuses {
		views = append(views, View(b))
	}
	return views
}
