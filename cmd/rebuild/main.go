// Command rebuild recomputes cached user balances and streaks from the
// points ledger.
//
//	rebuild              rebuild every user
//	rebuild -user <id>   rebuild one user
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/osse101/Scoreline_Go/internal/bootstrap"
	"github.com/osse101/Scoreline_Go/internal/config"
	"github.com/osse101/Scoreline_Go/internal/database"
	"github.com/osse101/Scoreline_Go/internal/ledger"
	"github.com/osse101/Scoreline_Go/internal/logger"
)

func main() {
	userID := flag.String("user", "", "rebuild only this user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName+"-rebuild", cfg.Version, cfg.Environment, false))

	if err := run(context.Background(), cfg, *userID); err != nil {
		slog.Error("Rebuild failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, userID string) error {
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	svc := ledger.NewService(bootstrap.InitializeRepositories(dbPool).Ledger)

	if userID != "" {
		user, err := svc.RebuildFromLedger(ctx, userID)
		if err != nil {
			return err
		}
		slog.Info("User rebuilt",
			"user_id", user.ID,
			"balance", user.PointsBalance,
			"current_streak", user.CurrentStreak,
			"max_streak", user.MaxStreak)
		return nil
	}

	n, err := svc.RebuildAll(ctx)
	if err != nil {
		return err
	}
	slog.Info("All users rebuilt", "users", n)
	return nil
}
