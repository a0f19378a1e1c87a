package cooldown

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

func TestCheck(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	duration := 30 * time.Second

	tests := []struct {
		name           string
		last           time.Time
		wantOnCooldown bool
		wantRemaining  time.Duration
	}{
		{"zero last", time.Time{}, false, 0},
		{"just used", now, true, duration},
		{"half way", now.Add(-15 * time.Second), true, 15 * time.Second},
		{"exactly elapsed", now.Add(-duration), false, 0},
		{"long ago", now.Add(-time.Hour), false, 0},
		{"clock skew in future", now.Add(time.Second), true, duration + time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			on, remaining := Check(now, tt.last, duration)
			assert.Equal(t, tt.wantOnCooldown, on)
			assert.Equal(t, tt.wantRemaining, remaining)
		})
	}
}

func TestEnforce(t *testing.T) {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

	err := Enforce("gather wood", now, now.Add(-5*time.Second), 90*time.Second)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotAvailable))
	assert.True(t, errors.Is(err, ErrOnCooldown{}))
	assert.Equal(t, "gather wood not available: ready in 1m 25s", err.Error())

	var cd ErrOnCooldown
	assert.True(t, errors.As(err, &cd))
	assert.Equal(t, 85*time.Second, cd.Remaining)

	assert.NoError(t, Enforce("gather wood", now, now.Add(-90*time.Second), 90*time.Second))
}

func TestErrOnCooldown_SecondsOnly(t *testing.T) {
	err := ErrOnCooldown{Action: "gather iron", Remaining: 7 * time.Second}
	assert.Equal(t, "gather iron not available: ready in 7s", err.Error())
	assert.False(t, errors.Is(err, domain.ErrInsufficientFunds))
}

func TestHashLockKey(t *testing.T) {
	h1 := HashLockKey("bonus", "pool")
	h2 := HashLockKey("bonus", "pool")
	assert.Equal(t, h1, h2, "hash should be deterministic")
	assert.GreaterOrEqual(t, h1, int64(0), "hash should be positive")
	assert.NotEqual(t, h1, HashLockKey("bonus", "other"))
	assert.NotEqual(t, HashLockKey("ab", "c"), HashLockKey("a", "bc"))
}
