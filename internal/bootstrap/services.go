package bootstrap

import (
	"github.com/osse101/Scoreline_Go/internal/champion"
	"github.com/osse101/Scoreline_Go/internal/concurrency"
	"github.com/osse101/Scoreline_Go/internal/config"
	"github.com/osse101/Scoreline_Go/internal/event"
	"github.com/osse101/Scoreline_Go/internal/eventlog"
	"github.com/osse101/Scoreline_Go/internal/leaderboard"
	"github.com/osse101/Scoreline_Go/internal/ledger"
	"github.com/osse101/Scoreline_Go/internal/prediction"
	"github.com/osse101/Scoreline_Go/internal/scoring"
	"github.com/osse101/Scoreline_Go/internal/server"
	"github.com/osse101/Scoreline_Go/internal/streak"
)

// InitializeServices wires the domain services. Scoring, champion and
// leaderboard share one lock manager so in-process work on the same match,
// season or scope is serialized.
func InitializeServices(cfg *config.Config, repos *Repositories, publisher *event.ResilientPublisher) server.Services {
	locks := concurrency.NewLockManager()

	return server.Services{
		Prediction: prediction.NewService(repos.Prediction, publisher),
		Ledger:     ledger.NewService(repos.Ledger),
		Scoring:    scoring.NewService(repos.Scoring, streak.NewTracker(), locks, publisher),
		Champion:   champion.NewService(repos.Champion, locks, publisher),
		Leaderboard: leaderboard.NewService(repos.Leaderboard, locks, publisher, leaderboard.Options{
			CacheSize:            cfg.LeaderboardCacheSize,
			CacheTTL:             cfg.LeaderboardCacheTTL,
			CurrentRoundOverride: cfg.CurrentRoundOverride,
		}),
		EventLog: eventlog.NewService(repos.EventLog),
	}
}
