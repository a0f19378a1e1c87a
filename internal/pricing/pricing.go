package pricing

import "math"

// Curve holds the growth rates shared by every worker kind.
// It is an immutable value; construct once at startup and pass by value.
type Curve struct {
	ObjectGrowth float64 `yaml:"object_growth" validate:"gt=1"`
	LevelGrowth  float64 `yaml:"level_growth" validate:"gt=1"`
}

// DefaultCurve returns the growth rates used when no economy file overrides them
func DefaultCurve() Curve {
	return Curve{
		ObjectGrowth: DefaultObjectGrowth,
		LevelGrowth:  DefaultLevelGrowth,
	}
}

// UnitPrice is the price of one more object when count are already owned
func (c Curve) UnitPrice(base float64, count int) float64 {
	return math.Ceil(base * math.Pow(c.ObjectGrowth, float64(count)))
}

// CumulativePrice is the total price of buying amount objects, one at a time, starting from count
func (c Curve) CumulativePrice(base float64, count, amount int) float64 {
	total := 0.0
	for i := 0; i < amount; i++ {
		total += c.UnitPrice(base, count+i)
	}
	return total
}

// LevelPrice is the price of upgrading a site currently at level
func (c Curve) LevelPrice(base float64, level int) float64 {
	return math.Ceil(base * math.Pow(c.LevelGrowth, float64(level)))
}

// LevelMultiplier converts a site level into a gather-rate multiplier.
// Levels outside the table yield 1.
func LevelMultiplier(level int) float64 {
	if m, ok := levelMultipliers[level]; ok {
		return m
	}
	return 1
}
