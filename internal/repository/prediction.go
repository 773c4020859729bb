package repository

import (
	"context"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// Prediction defines the interface for match prediction persistence
type Prediction interface {
	GetMatch(ctx context.Context, matchID int64) (*domain.Match, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetPrediction(ctx context.Context, predictionID int64) (*domain.Prediction, error)
	// GetPredictionByUserMatch returns nil, nil when the user has not predicted the match
	GetPredictionByUserMatch(ctx context.Context, userID string, matchID int64) (*domain.Prediction, error)
	// CreatePrediction fills in ID and timestamps. A (user, match) duplicate
	// returns domain.ErrAlreadyPredicted.
	CreatePrediction(ctx context.Context, p *domain.Prediction) error
	// UpdatePredictionScores only touches unscored rows; a scored row returns
	// domain.ErrAlreadyCalculated.
	UpdatePredictionScores(ctx context.Context, predictionID int64, home, away int, outcome domain.Outcome, updatedAt time.Time) error
	ListUserPredictions(ctx context.Context, userID string, page domain.Page) ([]domain.Prediction, int, error)
}
