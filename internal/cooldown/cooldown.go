package cooldown

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/osse101/IdleForge_Go/internal/domain"
)

// ErrOnCooldown is returned when an action is attempted before its cooldown elapsed
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to match any ErrOnCooldown as well as domain.ErrNotAvailable
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrNotAvailable {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// Check reports whether an action last performed at last is still cooling down at now,
// and how long remains. A zero last time is never on cooldown.
func Check(now, last time.Time, duration time.Duration) (bool, time.Duration) {
	if last.IsZero() {
		return false, 0
	}

	readyAt := last.Add(duration)
	if now.Before(readyAt) {
		return true, readyAt.Sub(now)
	}
	return false, 0
}

// Enforce returns ErrOnCooldown when Check reports the action is not ready
func Enforce(action string, now, last time.Time, duration time.Duration) error {
	if on, remaining := Check(now, last, duration); on {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}
	return nil
}

// HashLockKey creates a consistent positive int64 from a lock name for postgres advisory locks
func HashLockKey(parts ...string) int64 {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte(HashSeparator))
		}
		h.Write([]byte(p))
	}
	sum := h.Sum(nil)
	return int64(binary.BigEndian.Uint64(sum[:8]) & HashMaskPositiveInt64)
}
