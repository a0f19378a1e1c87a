package bootstrap

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingIdleForge   = "Starting IdleForge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
)

// Log messages for store initialization
const (
	LogMsgStoreOpened        = "Store opened"
	LogMsgMigrationsApplied  = "Migrations applied"
	ErrMsgFailedOpenPool     = "failed to open database pool"
	ErrMsgFailedMigrate      = "failed to run migrations"
	ErrMsgFailedOpenSQLite   = "failed to open sqlite database"
	ErrMsgUnknownStoreDriver = "unknown store driver"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStreamSubscriberRegistered = "Stream subscriber registered"
	LogMsgBonusJobScheduled          = "Bonus generation job scheduled"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgStoppingScheduler    = "Stopping scheduler..."
	LogMsgStoppingWorkers      = "Stopping worker pool..."
	LogMsgStoppingHub          = "Stopping stream hub..."
	LogMsgClosingStore         = "Closing store..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgStoreCloseFailed     = "Store close failed"
)
