package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleForge_Go/internal/bonus"
	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/pricing"
	"github.com/osse101/IdleForge_Go/internal/site"
)

var allEnvVars = []string{
	EnvPort, EnvAPIKey, EnvLogLevel, EnvLogFormat, EnvEnvironment, EnvServiceName, EnvVersion,
	EnvDBDriver, EnvDBUser, EnvDBPassword, EnvDBHost, EnvDBPort, EnvDBName,
	EnvDBMaxConns, EnvDBMaxIdle, EnvDBMaxLife, EnvSQLitePath, EnvEconomyFile,
	EnvRateLimit, EnvRateBurst, EnvIdentityCacheSize, EnvIdentityCacheTTL,
	EnvMaxRequestBytes, EnvWorkerCount, EnvWorkerQueueSize, EnvShutdownTimeout,
}

// clearEnvVars unsets every variable Load reads and restores them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range allEnvVars {
		if v, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, v) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "test-key")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultPort, cfg.Port, "Should use default port")
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, DefaultRateBurst, cfg.RateBurst)
		assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
		assert.Equal(t, int64(DefaultMaxRequestBytes), cfg.MaxRequestBytes)
		assert.Empty(t, cfg.EconomyFile)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvPort, "3000")
		t.Setenv(EnvAPIKey, "custom-api-key")
		t.Setenv(EnvLogLevel, "debug")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "prod")
		t.Setenv(EnvDBDriver, "sqlite")
		t.Setenv(EnvSQLitePath, "/tmp/game.db")
		t.Setenv(EnvRateLimit, "2.5")
		t.Setenv(EnvIdentityCacheTTL, "90s")
		t.Setenv(EnvWorkerCount, "4")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "custom-api-key", cfg.APIKey)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "sqlite", cfg.DBDriver)
		assert.Equal(t, "/tmp/game.db", cfg.SQLitePath)
		assert.Equal(t, 2.5, cfg.RateLimit)
		assert.Equal(t, 90*time.Second, cfg.IdentityCacheTTL)
		assert.Equal(t, 4, cfg.WorkerCount)
	})

	t.Run("returns error when API_KEY is missing", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
		assert.Contains(t, err.Error(), "must be set")
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "test-key")
		t.Setenv(EnvPort, "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "test-key")
		t.Setenv(EnvDBDriver, "mongo")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "DBDriver")
	})

	t.Run("rejects out of range port", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "test-key")
		t.Setenv(EnvPort, "70000")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("falls back to defaults for unparsable numbers", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvAPIKey, "test-key")
		t.Setenv(EnvRateBurst, "lots")
		t.Setenv(EnvShutdownTimeout, "soon")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultRateBurst, cfg.RateBurst)
		assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	})
}

func TestConfig_Warnings(t *testing.T) {
	cfg := &Config{DBPassword: SampleDBPassword, APIKey: SampleAPIKey}
	assert.Len(t, cfg.Warnings(), 2)

	cfg = &Config{DBPassword: "secret", APIKey: "key"}
	assert.Empty(t, cfg.Warnings())
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "1", DBName: "d"}
	assert.Equal(t, "postgres://u:p@h:1/d?sslmode=disable", cfg.GetDBConnString())
}

func TestLoadEconomy_DefaultsWithoutFile(t *testing.T) {
	econ, err := LoadEconomy("")

	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultCurve(), econ.Curve)
	assert.Equal(t, bonus.DefaultGenerationConfig(), econ.Bonus)
	assert.Len(t, econ.Sites, 3)
	assert.NoError(t, econ.Validate())
}

func TestParseEconomy_PartialOverride(t *testing.T) {
	econ, err := ParseEconomy([]byte(`
curve:
  object_growth: 1.5
sites:
  stone:
    sell_price: 80
    cooldown: 45s
bonus:
  pool_size: 8
`))

	require.NoError(t, err)
	assert.Equal(t, 1.5, econ.Curve.ObjectGrowth)
	assert.Equal(t, pricing.DefaultLevelGrowth, econ.Curve.LevelGrowth)
	assert.Equal(t, 8, econ.Bonus.PoolSize)
	assert.Equal(t, bonus.DefaultMinBaseCost, econ.Bonus.MinBaseCost)

	stone, err := econ.Sites.Get(domain.SiteStone)
	require.NoError(t, err)
	assert.Equal(t, 80.0, stone.SellPrice)
	assert.Equal(t, 45*time.Second, stone.Cooldown)
	assert.Equal(t, "Mine", stone.SiteName, "unnamed fields keep defaults")
	assert.Equal(t, domain.SiteStone, stone.Kind)
	assert.Contains(t, stone.GatherKinds, domain.BonusStoneEfficiency)
	assert.Contains(t, stone.PurchaseKinds, domain.BonusMinerSale)

	assert.Equal(t, site.DefaultKinds()[domain.SiteWood].SellPrice, econ.Sites[domain.SiteWood].SellPrice)
}

func TestParseEconomy_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"growth at most one", "curve:\n  object_growth: 1\n"},
		{"inverted cost range", "bonus:\n  min_base_cost: 500\n  max_base_cost: 100\n"},
		{"unknown site", "sites:\n  gold:\n    sell_price: 1\n"},
		{"negative price", "sites:\n  wood:\n    worker_base_price: -1\n"},
		{"zero cooldown", "sites:\n  iron:\n    cooldown: 0s\n"},
		{"malformed yaml", "curve: [1, 2"},
		{"misspelled field", "bonus:\n  intervall: 30s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEconomy([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadEconomy_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "economy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bonus:\n  interval: 30s\n"), 0o600))

	econ, err := LoadEconomy(path)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, econ.Bonus.Interval)

	_, err = LoadEconomy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadEconomy_ShippedFileMatchesDefaults(t *testing.T) {
	econ, err := LoadEconomy(filepath.Join("..", "..", "configs", "economy.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultEconomy(), econ)
}
