package repository

import (
	"context"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// Scoring defines the interface for match scoring persistence
type Scoring interface {
	BeginTx(ctx context.Context) (ScoringTx, error)
	// ListFinishedUnscoredMatches returns ids of final matches whose scored_at is unset
	ListFinishedUnscoredMatches(ctx context.Context, limit int) ([]int64, error)
}

// ScoringTx defines the interface for a match scoring transaction
type ScoringTx interface {
	LedgerTx
	// GetMatchForUpdate row-locks the match so only one scorer runs per match
	GetMatchForUpdate(ctx context.Context, matchID int64) (*domain.Match, error)
	ListUnscoredPredictionsForUpdate(ctx context.Context, matchID int64) ([]domain.Prediction, error)
	SavePredictionScore(ctx context.Context, predictionID int64, score domain.PredictionScore) error
	MarkMatchScored(ctx context.Context, matchID int64, scoredAt time.Time) error
	// Savepoint opens a nested transaction; its Rollback undoes only the
	// work done through it.
	Savepoint(ctx context.Context) (ScoringTx, error)
}
