package prediction

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetMatch(ctx context.Context, matchID int64) (*domain.Match, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *mockRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockRepository) GetPrediction(ctx context.Context, predictionID int64) (*domain.Prediction, error) {
	args := m.Called(ctx, predictionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *mockRepository) GetPredictionByUserMatch(ctx context.Context, userID string, matchID int64) (*domain.Prediction, error) {
	args := m.Called(ctx, userID, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *mockRepository) CreatePrediction(ctx context.Context, p *domain.Prediction) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepository) UpdatePredictionScores(ctx context.Context, predictionID int64, home, away int, outcome domain.Outcome, updatedAt time.Time) error {
	args := m.Called(ctx, predictionID, home, away, outcome, updatedAt)
	return args.Error(0)
}

func (m *mockRepository) ListUserPredictions(ctx context.Context, userID string, page domain.Page) ([]domain.Prediction, int, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Prediction), args.Int(1), args.Error(2)
}
