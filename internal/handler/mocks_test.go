package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Scoreline_Go/internal/champion"
	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/event"
	"github.com/osse101/Scoreline_Go/internal/eventlog"
	"github.com/osse101/Scoreline_Go/internal/leaderboard"
	"github.com/osse101/Scoreline_Go/internal/ledger"
	"github.com/osse101/Scoreline_Go/internal/prediction"
	"github.com/osse101/Scoreline_Go/internal/scoring"
)

var (
	_ eventlog.Service    = (*MockEventLogService)(nil)
	_ prediction.Service  = (*MockPredictionService)(nil)
	_ ledger.Service      = (*MockLedgerService)(nil)
	_ scoring.Service     = (*MockScoringService)(nil)
	_ leaderboard.Service = (*MockLeaderboardService)(nil)
	_ champion.Service    = (*MockChampionService)(nil)
)

type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) Submit(ctx context.Context, userID string, matchID int64, home, away int) (*domain.Prediction, error) {
	args := m.Called(ctx, userID, matchID, home, away)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) Update(ctx context.Context, callerID string, predictionID int64, home, away int) (*domain.Prediction, error) {
	args := m.Called(ctx, callerID, predictionID, home, away)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) Get(ctx context.Context, predictionID int64) (*domain.Prediction, error) {
	args := m.Called(ctx, predictionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prediction), args.Error(1)
}

func (m *MockPredictionService) ListByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Prediction, int, error) {
	args := m.Called(ctx, userID, page)
	preds, _ := args.Get(0).([]domain.Prediction)
	return preds, args.Int(1), args.Error(2)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Append(ctx context.Context, entry domain.LedgerEntry) (*domain.PointTransaction, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PointTransaction), args.Error(1)
}

func (m *MockLedgerService) Spend(ctx context.Context, userID string, txType domain.TransactionType, cost int64, description string, ref domain.Reference) (*domain.PointTransaction, error) {
	args := m.Called(ctx, userID, txType, cost, description, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PointTransaction), args.Error(1)
}

func (m *MockLedgerService) Balance(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerService) History(ctx context.Context, userID string, page domain.Page) (*domain.PointHistory, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PointHistory), args.Error(1)
}

func (m *MockLedgerService) RebuildFromLedger(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockLedgerService) RebuildAll(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockScoringService struct {
	mock.Mock
}

func (m *MockScoringService) ScoreMatch(ctx context.Context, matchID int64) (*domain.ScoringResult, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ScoringResult), args.Error(1)
}

func (m *MockScoringService) ScorePendingMatches(ctx context.Context) ([]domain.ScoringResult, error) {
	args := m.Called(ctx)
	results, _ := args.Get(0).([]domain.ScoringResult)
	return results, args.Error(1)
}

type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) Recompute(ctx context.Context, scope domain.Scope) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, scope)
	entries, _ := args.Get(0).([]domain.LeaderboardEntry)
	return entries, args.Error(1)
}

func (m *MockLeaderboardService) RecomputeActive(ctx context.Context) ([]domain.Scope, error) {
	args := m.Called(ctx)
	scopes, _ := args.Get(0).([]domain.Scope)
	return scopes, args.Error(1)
}

func (m *MockLeaderboardService) GetLeaderboard(ctx context.Context, scope domain.Scope, page domain.Page) (*domain.LeaderboardPage, error) {
	args := m.Called(ctx, scope, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaderboardPage), args.Error(1)
}

func (m *MockLeaderboardService) GetUserStanding(ctx context.Context, scope domain.Scope, userID string) (*domain.LeaderboardEntry, error) {
	args := m.Called(ctx, scope, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaderboardEntry), args.Error(1)
}

func (m *MockLeaderboardService) HandleMatchScored(ctx context.Context, evt event.Event) error {
	return m.Called(ctx, evt).Error(0)
}

func (m *MockLeaderboardService) HandleChampionResolved(ctx context.Context, evt event.Event) error {
	return m.Called(ctx, evt).Error(0)
}

type MockChampionService struct {
	mock.Mock
}

func (m *MockChampionService) Predict(ctx context.Context, userID string, req domain.ChampionPredictionRequest) (*domain.ChampionPrediction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChampionPrediction), args.Error(1)
}

func (m *MockChampionService) ResolveSeason(ctx context.Context, seasonID, championTeamID int64) (*domain.ChampionResolution, error) {
	args := m.Called(ctx, seasonID, championTeamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChampionResolution), args.Error(1)
}

func (m *MockChampionService) ListByUser(ctx context.Context, userID string) ([]domain.ChampionPrediction, error) {
	args := m.Called(ctx, userID)
	preds, _ := args.Get(0).([]domain.ChampionPrediction)
	return preds, args.Error(1)
}

func (m *MockChampionService) GetSeasonChampion(ctx context.Context, seasonID int64) (*domain.SeasonChampion, error) {
	args := m.Called(ctx, seasonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SeasonChampion), args.Error(1)
}

type MockEventLogService struct {
	mock.Mock
}

func (m *MockEventLogService) Subscribe(bus event.Bus) {
	m.Called(bus)
}

func (m *MockEventLogService) List(ctx context.Context, filter domain.EventLogFilter) ([]domain.EventLogEntry, int, error) {
	args := m.Called(ctx, filter)
	events, _ := args.Get(0).([]domain.EventLogEntry)
	return events, args.Int(1), args.Error(2)
}

func (m *MockEventLogService) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	args := m.Called(ctx, retention)
	return args.Get(0).(int64), args.Error(1)
}
