package repository

import (
	"context"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// Champion defines the interface for champion prediction persistence
type Champion interface {
	BeginTx(ctx context.Context) (ChampionTx, error)
	GetSeason(ctx context.Context, seasonID int64) (*domain.Season, error)
	// GetSeasonChampion returns nil, nil while the season is unresolved
	GetSeasonChampion(ctx context.Context, seasonID int64) (*domain.SeasonChampion, error)
	ListUserChampionPredictions(ctx context.Context, userID string) ([]domain.ChampionPrediction, error)
}

// ChampionTx defines the interface for champion prediction transactions
type ChampionTx interface {
	LedgerTx
	GetSeason(ctx context.Context, seasonID int64) (*domain.Season, error)
	// GetChampionPrediction returns nil, nil when the user has no prediction for the season
	GetChampionPrediction(ctx context.Context, userID string, seasonID int64) (*domain.ChampionPrediction, error)
	// CreateChampionPrediction fills in ID and CreatedAt. A (user, season)
	// duplicate returns domain.ErrAlreadyPredicted.
	CreateChampionPrediction(ctx context.Context, cp *domain.ChampionPrediction) error
	// GetSeasonChampionForUpdate returns nil, nil while the season is unresolved
	GetSeasonChampionForUpdate(ctx context.Context, seasonID int64) (*domain.SeasonChampion, error)
	InsertSeasonChampion(ctx context.Context, sc *domain.SeasonChampion) error
	ListPendingChampionPredictionsForUpdate(ctx context.Context, seasonID int64) ([]domain.ChampionPrediction, error)
	SettleChampionPrediction(ctx context.Context, id int64, status domain.ChampionStatus, pointsEarned int64, calculatedAt time.Time) error
	Savepoint(ctx context.Context) (ChampionTx, error)
}
