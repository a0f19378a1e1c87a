package site

const playerLockPrefix = "player:"

// Log messages
const (
	LogMsgWorkersBought = "Workers bought"
	LogMsgSiteUpgraded  = "Site upgraded"
	LogMsgGathered      = "Resources gathered"
	LogMsgSold          = "Resources sold"
	LogMsgPublishFailed = "Failed to publish site event"
)

// Error format strings
const (
	ErrMsgBeginTxFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed = "failed to commit transaction: %w"
	ErrMsgLoadBonuses    = "failed to load active bonuses: %w"
)
