package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Scoreline_Go/internal/database/postgres"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Ledger      repository.Ledger
	Prediction  repository.Prediction
	Scoring     repository.Scoring
	Champion    repository.Champion
	Leaderboard repository.Leaderboard
	EventLog    repository.EventLog
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Ledger:      postgres.NewLedgerRepository(dbPool),
		Prediction:  postgres.NewPredictionRepository(dbPool),
		Scoring:     postgres.NewScoringRepository(dbPool),
		Champion:    postgres.NewChampionRepository(dbPool),
		Leaderboard: postgres.NewLeaderboardRepository(dbPool),
		EventLog:    postgres.NewEventLogRepository(dbPool),
	}
}
