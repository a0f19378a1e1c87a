package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	APIKey      string `validate:"required"`
	LogLevel    string `validate:"oneof=debug info warn warning error DEBUG INFO WARN ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	DBDriver   string `validate:"oneof=postgres sqlite"`
	DBUser     string `validate:"required_if=DBDriver postgres"`
	DBPassword string
	DBHost     string `validate:"required_if=DBDriver postgres"`
	DBPort     string `validate:"required_if=DBDriver postgres"`
	DBName     string `validate:"required_if=DBDriver postgres"`
	DBMaxConns int    `validate:"min=0"`
	DBMaxIdle  time.Duration
	DBMaxLife  time.Duration
	SQLitePath string `validate:"required_if=DBDriver sqlite"`

	// EconomyFile is an optional YAML file overriding the economy defaults
	EconomyFile string

	RateLimit         float64       `validate:"gt=0"`
	RateBurst         int           `validate:"min=1"`
	IdentityCacheSize int           `validate:"min=1"`
	IdentityCacheTTL  time.Duration `validate:"gt=0"`
	MaxRequestBytes   int64         `validate:"min=1"`
	WorkerCount       int           `validate:"min=1"`
	WorkerQueueSize   int           `validate:"min=1"`
	ShutdownTimeout   time.Duration `validate:"gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv(EnvAPIKey, ""),
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		DBDriver:   getEnv(EnvDBDriver, DefaultDBDriver),
		DBUser:     getEnv(EnvDBUser, "postgres"),
		DBPassword: getEnv(EnvDBPassword, "postgres"),
		DBHost:     getEnv(EnvDBHost, "localhost"),
		DBPort:     getEnv(EnvDBPort, "5432"),
		DBName:     getEnv(EnvDBName, "idleforge"),
		DBMaxConns: getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxIdle:  getEnvAsDuration(EnvDBMaxIdle, DefaultDBMaxIdle),
		DBMaxLife:  getEnvAsDuration(EnvDBMaxLife, DefaultDBMaxLife),
		SQLitePath: getEnv(EnvSQLitePath, DefaultSQLitePath),

		EconomyFile: getEnv(EnvEconomyFile, ""),

		RateLimit:         getEnvAsFloat(EnvRateLimit, DefaultRateLimit),
		RateBurst:         getEnvAsInt(EnvRateBurst, DefaultRateBurst),
		IdentityCacheSize: getEnvAsInt(EnvIdentityCacheSize, DefaultIdentityCacheSize),
		IdentityCacheTTL:  getEnvAsDuration(EnvIdentityCacheTTL, DefaultIdentityCacheTTL),
		MaxRequestBytes:   int64(getEnvAsInt(EnvMaxRequestBytes, DefaultMaxRequestBytes)),
		WorkerCount:       getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize:   getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),
		ShutdownTimeout:   getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidConfig, err)
	}

	return cfg, nil
}

// Warnings reports insecure values copied from the example environment file
func (c *Config) Warnings() []string {
	var warnings []string
	if c.DBPassword == SampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == SampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	return warnings
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
