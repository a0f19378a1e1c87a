package bonus

import (
	"slices"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// Stack multiplies value by the factor of every active bonus whose kind is in kinds.
// Each activation contributes once; duplicates of a kind are both applied.
func Stack(value float64, active []domain.ActiveBonus, kinds []domain.BonusKind) (float64, error) {
	for _, a := range active {
		if !slices.Contains(kinds, a.Bonus.Kind) {
			continue
		}
		m, err := Multiplier(a.Bonus.Kind, a.Bonus.Level)
		if err != nil {
			return 0, err
		}
		value *= m
	}
	return value, nil
}
