package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/IdleForge_Go/internal/bootstrap"
	"github.com/osse101/IdleForge_Go/internal/config"
	"github.com/osse101/IdleForge_Go/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(os.Stdout, cfg)

	econ, err := config.LoadEconomy(cfg.EconomyFile)
	if err != nil {
		slog.Error("Failed to load economy", "error", err, "path", cfg.EconomyFile)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg, true)
	if err != nil {
		slog.Error("Failed to open store", "error", err)
		os.Exit(1)
	}

	bus, hub := bootstrap.InitializeEventSystem()
	bootstrap.RegisterEventHandlers(bus, hub)

	svc := bootstrap.InitializeServices(store, econ, bus)
	pool, sched := bootstrap.InitializeJobs(cfg, econ, svc.Bonuses)

	srv := server.NewServer(server.Options{
		Port:              cfg.Port,
		APIKey:            cfg.APIKey,
		MaxRequestBytes:   cfg.MaxRequestBytes,
		RateLimit:         cfg.RateLimit,
		RateBurst:         cfg.RateBurst,
		IdentityCacheSize: cfg.IdentityCacheSize,
		IdentityCacheTTL:  cfg.IdentityCacheTTL,
	}, server.Services{
		Players: svc.Players,
		Sites:   svc.Sites,
		Bonuses: svc.Bonuses,
		DB:      store,
		Hub:     hub,
	})

	hub.Start()
	pool.Start()
	sched.Start()

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			slog.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Workers:   pool,
		Hub:       hub,
		Store:     store,
	})
}
