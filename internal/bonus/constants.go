package bonus

import "time"

// Generation defaults
const (
	DefaultPoolSize           = 5
	DefaultMinBaseCost        = 20000
	DefaultMaxBaseCost        = 30000
	DefaultMinAvailability    = 1 * time.Minute
	DefaultMaxAvailability    = 5 * time.Minute
	DefaultMinDuration        = 30 * time.Second
	DefaultMaxDuration        = 120 * time.Second
	DefaultGenerationInterval = time.Minute
)

// Lock keys
const (
	PoolLockKey      = "bonus:pool"
	bonusLockPrefix  = "bonus:"
	playerLockPrefix = "player:"
)

// Log messages
const (
	LogMsgBonusGenerated     = "Bonus generated"
	LogMsgBonusPoolFull      = "Bonus pool full, skipping generation"
	LogMsgBonusPurchased     = "Bonus purchased"
	LogMsgOthersBonusApplied = "Bonus applied to other players"
	LogMsgPurchaseRejected   = "Bonus purchase rejected"
	LogMsgPublishFailed      = "Failed to publish bonus event"
)

// Event reasons
const (
	ReasonPurchased = "purchased"
	ReasonGenerated = "generated"
)

// Error format strings
const (
	ErrMsgBeginTxFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed = "failed to commit transaction: %w"
)
