package event

// EventSchemaVersion is the current event schema version
const EventSchemaVersion = "1.0"

// Player actions carried in PlayerUpdated payloads
const (
	ActionRegister     = "register"
	ActionBuyWorker    = "buy_worker"
	ActionUpgradeLevel = "upgrade_level"
	ActionGather       = "gather"
	ActionSell         = "sell"
	ActionBonus        = "bonus"
)

const LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
