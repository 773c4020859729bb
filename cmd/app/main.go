// Scoreline API server.
//
//go:generate swag init -g cmd/app/main.go -d ../../ -o ../../docs
//
// @title Scoreline API
// @version 1.0
// @description Match predictions, the points ledger, streaks, leaderboards and season champion wagers.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/Scoreline_Go/internal/bootstrap"
	"github.com/osse101/Scoreline_Go/internal/config"
	"github.com/osse101/Scoreline_Go/internal/database"
	"github.com/osse101/Scoreline_Go/internal/server"
	"github.com/osse101/Scoreline_Go/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	version, err := database.Migrate(ctx, dbPool)
	if err != nil {
		return err
	}
	slog.Info("Database ready", "schema_version", version)

	eventBus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos, publisher)

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:    eventBus,
		Leaderboard: services.Leaderboard,
		EventLog:    services.EventLog,
	}); err != nil {
		return err
	}

	scheduler, err := worker.NewScheduler(worker.DefaultJobTimeout)
	if err != nil {
		return err
	}
	if err := bootstrap.ScheduleJobs(cfg, scheduler, services); err != nil {
		return err
	}
	scheduler.Start()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          scheduler,
		ResilientPublisher: publisher,
	})

	return err
}
