package bonus

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// Random is the source of randomness for bonus generation.
// IntN returns a value in [0, n).
type Random interface {
	IntN(n int) int
}

// GenerationConfig bounds the randomized fields of a new bonus
type GenerationConfig struct {
	PoolSize        int           `yaml:"pool_size" validate:"min=1"`
	MinBaseCost     int           `yaml:"min_base_cost" validate:"min=1"`
	MaxBaseCost     int           `yaml:"max_base_cost" validate:"gtefield=MinBaseCost"`
	MinAvailability time.Duration `yaml:"min_availability" validate:"gt=0"`
	MaxAvailability time.Duration `yaml:"max_availability" validate:"gtefield=MinAvailability"`
	MinDuration     time.Duration `yaml:"min_duration" validate:"gt=0"`
	MaxDuration     time.Duration `yaml:"max_duration" validate:"gtefield=MinDuration"`
	Interval        time.Duration `yaml:"interval" validate:"gt=0"`
}

// DefaultGenerationConfig returns the standard generation ranges
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		PoolSize:        DefaultPoolSize,
		MinBaseCost:     DefaultMinBaseCost,
		MaxBaseCost:     DefaultMaxBaseCost,
		MinAvailability: DefaultMinAvailability,
		MaxAvailability: DefaultMaxAvailability,
		MinDuration:     DefaultMinDuration,
		MaxDuration:     DefaultMaxDuration,
		Interval:        DefaultGenerationInterval,
	}
}

// Generator creates randomized bonuses
type Generator struct {
	cfg GenerationConfig
	rnd Random
}

// NewGenerator creates a generator; a nil rnd uses math/rand/v2
func NewGenerator(cfg GenerationConfig, rnd Random) *Generator {
	if rnd == nil {
		rnd = globalRandom{}
	}
	return &Generator{cfg: cfg, rnd: rnd}
}

// New builds a bonus created at now; fields are drawn uniformly from the configured inclusive ranges
func (g *Generator) New(now time.Time) domain.Bonus {
	kind := domain.AllBonusKinds[g.rnd.IntN(len(domain.AllBonusKinds))]
	level := g.between(domain.MinBonusLevel, domain.MaxBonusLevel)
	availableSecs := g.between(int(g.cfg.MinAvailability/time.Second), int(g.cfg.MaxAvailability/time.Second))
	durationSecs := g.between(int(g.cfg.MinDuration/time.Second), int(g.cfg.MaxDuration/time.Second))
	base := g.between(g.cfg.MinBaseCost, g.cfg.MaxBaseCost)

	return domain.Bonus{
		ID:             uuid.NewString(),
		Kind:           kind,
		Level:          level,
		AvailableUntil: now.Add(time.Duration(availableSecs) * time.Second),
		Cost:           float64(base * level),
		Duration:       durationSecs,
		CreatedAt:      now,
	}
}

// between returns an int in [lo, hi]
func (g *Generator) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.IntN(hi-lo+1)
}

type globalRandom struct{}

func (globalRandom) IntN(n int) int { return rand.IntN(n) }
