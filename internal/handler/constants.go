package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPlayer         = "Missing player identity"
	ErrMsgUnknownSiteKind       = "Unknown site kind"
)

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgNotFoundError       = "Resource not found"
	ErrMsgPlayerNotFoundError = "Player not found"
	ErrMsgBonusNotFoundError  = "Bonus not found"
	ErrMsgNotAvailableError   = "That is not available right now"
	ErrMsgAlreadyPurchasedErr = "You already purchased this bonus"
	ErrMsgNotEnoughMoneyError = "Not enough money"
	ErrMsgLevelTooHighError   = "Site is already at the maximum level"
	ErrMsgNoGathererError     = "Hire a worker before upgrading"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
)

// URL parameters
const (
	ParamPlayerID = "playerID"
	ParamKind     = "kind"
	ParamBonusID  = "bonusID"
)

// Log messages
const (
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgRequestDecoded     = "Request decoded"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgOperationFailed    = "Operation failed"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgPlayerRegistered   = "Player registration handled"
	LogMsgSiteOperation      = "Site operation completed"
	LogMsgBonusPurchased     = "Bonus purchase completed"
	LogMsgBonusGenerationRun = "Bonus generation triggered"
)

// Operation names used in logs
const (
	OpRegister      = "register player"
	OpGetPlayer     = "get player"
	OpListPlayers   = "list players"
	OpBuyWorker     = "buy worker"
	OpUpgradeLevel  = "upgrade level"
	OpGather        = "gather"
	OpSell          = "sell"
	OpQuote         = "quote site"
	OpListBonuses   = "list bonuses"
	OpGetBonus      = "get bonus"
	OpBuyBonus      = "purchase bonus"
	OpActiveBonuses = "active bonuses"
	OpBonusHistory  = "bonus history"
	OpGenerateBonus = "generate bonus"
)
