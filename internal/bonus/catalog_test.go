package bonus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

func TestCatalog_CoversEveryKind(t *testing.T) {
	for _, kind := range domain.AllBonusKinds {
		def, err := Lookup(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, def.Kind)
		assert.NotEmpty(t, def.Description)
	}
	assert.Len(t, catalog, len(domain.AllBonusKinds))
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		kind  domain.BonusKind
		level int
		want  float64
	}{
		{domain.BonusEfficiency, 1, 1.5},
		{domain.BonusEfficiency, 3, 4.5},
		{domain.BonusStoneEfficiency, 3, 10},
		{domain.BonusSale, 2, 0.65},
		{domain.BonusMinerSale, 3, 0.25},
		{domain.BonusFreeze, 3, 0.2},
		{domain.BonusTax, 2, 2},
	}

	for _, tt := range tests {
		got, err := Multiplier(tt.kind, tt.level)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s level %d", tt.kind, tt.level)
	}
}

func TestMultiplier_Invalid(t *testing.T) {
	_, err := Multiplier(domain.BonusSale, 4)
	assert.ErrorIs(t, err, domain.ErrInconsistentState)

	_, err = Multiplier("DOUBLE_XP", 1)
	assert.ErrorIs(t, err, domain.ErrInconsistentState)
}

func TestTargets(t *testing.T) {
	assert.Equal(t, domain.TargetOthers, TargetOf(domain.BonusFreeze))
	assert.Equal(t, domain.TargetOthers, TargetOf(domain.BonusTax))
	assert.Equal(t, domain.TargetSelf, TargetOf(domain.BonusBlacksmithSale))
	assert.Equal(t, domain.TargetSelf, TargetOf(domain.BonusEfficiency))
}

func TestView(t *testing.T) {
	v := View(domain.Bonus{Kind: domain.BonusWoodEfficiency, Level: 2})
	assert.Equal(t, "Wood Efficiency", v.Name)
	assert.Equal(t, domain.TargetSelf, v.Target)
	assert.Equal(t, 5.0, v.Multiplier)
	assert.NotEmpty(t, v.Description)
}

func TestStack(t *testing.T) {
	active := func(kind domain.BonusKind, level int) domain.ActiveBonus {
		return domain.ActiveBonus{Bonus: domain.Bonus{Kind: kind, Level: level}}
	}
	purchaseKinds := []domain.BonusKind{domain.BonusSale, domain.BonusLumberjackSale, domain.BonusTax}

	t.Run("no bonuses leaves value", func(t *testing.T) {
		got, err := Stack(100, nil, purchaseKinds)
		require.NoError(t, err)
		assert.Equal(t, 100.0, got)
	})

	t.Run("ignores unrelated kinds", func(t *testing.T) {
		got, err := Stack(100, []domain.ActiveBonus{active(domain.BonusMinerSale, 3), active(domain.BonusEfficiency, 1)}, purchaseKinds)
		require.NoError(t, err)
		assert.Equal(t, 100.0, got)
	})

	t.Run("multiplies every relevant bonus", func(t *testing.T) {
		got, err := Stack(1000, []domain.ActiveBonus{
			active(domain.BonusSale, 3),           // 0.5
			active(domain.BonusLumberjackSale, 2), // 0.5
			active(domain.BonusTax, 2),            // 2
		}, purchaseKinds)
		require.NoError(t, err)
		assert.InDelta(t, 500.0, got, 1e-9)
	})

	t.Run("duplicate kinds compound", func(t *testing.T) {
		got, err := Stack(100, []domain.ActiveBonus{active(domain.BonusTax, 1), active(domain.BonusTax, 1)}, purchaseKinds)
		require.NoError(t, err)
		assert.InDelta(t, 156.25, got, 1e-9)
	})

	t.Run("corrupt level fails", func(t *testing.T) {
		_, err := Stack(100, []domain.ActiveBonus{active(domain.BonusSale, 9)}, purchaseKinds)
		assert.ErrorIs(t, err, domain.ErrInconsistentState)
	})
}
