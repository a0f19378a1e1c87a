package cooldown

// =============================================================================
// Hash Constants
// =============================================================================

const (
	// HashSeparator joins lock name parts before hashing
	HashSeparator = ":"

	// HashMaskPositiveInt64 keeps advisory lock keys in the positive int64 range
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	ErrFmtCooldownWithMinutes = "%s not available: ready in %dm %ds"
	ErrFmtCooldownSecondsOnly = "%s not available: ready in %ds"
)

const SecondsPerMinute = 60
