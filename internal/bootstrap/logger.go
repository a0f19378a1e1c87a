package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/IdleForge_Go/internal/config"
	"github.com/osse101/IdleForge_Go/internal/logger"
)

// SetupLogger initializes the process logger from cfg, writing to w, and
// reports the loaded configuration and any non-fatal warnings.
func SetupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	logCfg := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == logger.EnvironmentDev,
	)
	log := logger.InitLoggerWithWriter(w, logCfg)

	log.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel().String())
	log.Info(LogMsgStartingIdleForge,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	log.Debug(LogMsgConfigurationLoaded,
		"db_driver", cfg.DBDriver,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"economy_file", cfg.EconomyFile,
		"port", cfg.Port)

	for _, warning := range cfg.Warnings() {
		log.Warn(LogMsgConfigWarning, "warning", warning)
	}
	return log
}
