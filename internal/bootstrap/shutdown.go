package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/IdleForge_Go/internal/scheduler"
	"github.com/osse101/IdleForge_Go/internal/server"
	"github.com/osse101/IdleForge_Go/internal/sse"
	"github.com/osse101/IdleForge_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Workers   *worker.Pool
	Hub       *sse.Hub
	Store     *Store
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (no new jobs)
// 3. Worker pool (cancel and drain in-flight jobs)
// 4. Stream hub (close client channels)
// 5. Store (release connections)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgStoppingScheduler)
		components.Scheduler.Stop()
	}

	if components.Workers != nil {
		slog.Info(LogMsgStoppingWorkers)
		components.Workers.Stop()
	}

	if components.Hub != nil {
		slog.Info(LogMsgStoppingHub)
		components.Hub.Stop()
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
