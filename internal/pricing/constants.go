package pricing

// Default growth rates
const (
	DefaultObjectGrowth = 1.2
	DefaultLevelGrowth  = 4.0
)

var levelMultipliers = map[int]float64{
	1: 1,
	2: 2,
	3: 5,
	4: 7.5,
	5: 10,
}
