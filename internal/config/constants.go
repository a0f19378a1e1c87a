package config

import "time"

// Environment defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "idleforge"
	DefaultVersion           = "dev"
	DefaultDBDriver          = "postgres"
	DefaultSQLitePath        = "idleforge.db"
	DefaultDBMaxConns        = 20
	DefaultDBMaxIdle         = 30 * time.Minute
	DefaultDBMaxLife         = time.Hour
	DefaultRateLimit         = 10.0
	DefaultRateBurst         = 20
	DefaultIdentityCacheSize = 10000
	DefaultIdentityCacheTTL  = 5 * time.Minute
	DefaultMaxRequestBytes   = 1 << 20
	DefaultWorkerCount       = 2
	DefaultWorkerQueueSize   = 16
	DefaultShutdownTimeout   = 15 * time.Second
)

// Environment variable names
const (
	EnvPort              = "PORT"
	EnvAPIKey            = "API_KEY"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvEnvironment       = "ENVIRONMENT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvDBDriver          = "DB_DRIVER"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxIdle         = "DB_MAX_IDLE"
	EnvDBMaxLife         = "DB_MAX_LIFE"
	EnvSQLitePath        = "SQLITE_PATH"
	EnvEconomyFile       = "ECONOMY_FILE"
	EnvRateLimit         = "RATE_LIMIT"
	EnvRateBurst         = "RATE_BURST"
	EnvIdentityCacheSize = "IDENTITY_CACHE_SIZE"
	EnvIdentityCacheTTL  = "IDENTITY_CACHE_TTL"
	EnvMaxRequestBytes   = "MAX_REQUEST_BYTES"
	EnvWorkerCount       = "WORKER_COUNT"
	EnvWorkerQueueSize   = "WORKER_QUEUE_SIZE"
	EnvShutdownTimeout   = "SHUTDOWN_TIMEOUT"
)

// Insecure sample values from .env.example
const (
	SampleDBPassword = "change_this_secure_password"
	SampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgInvalidPort        = "invalid PORT value: %w"
	ErrMsgAPIKeyRequired     = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig      = "invalid configuration: %w"
	ErrMsgReadEconomyFile    = "failed to read economy file %s: %w"
	ErrMsgParseEconomyFile   = "failed to parse economy file %s: %w"
	ErrMsgInvalidEconomy     = "invalid economy settings: %w"
	ErrMsgUnknownSiteSection = "unknown site kind %q in economy file"
)
