package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/testing/leaktest"
)

type countingJob struct {
	runs  atomic.Int32
	block chan struct{}
	err   error
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) Process(ctx context.Context) error {
	j.runs.Add(1)
	if j.block != nil {
		select {
		case <-j.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return j.err
}

func TestScheduler_RunsJobs(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	s, err := NewScheduler(time.Second)
	require.NoError(t, err)

	job := &countingJob{err: errors.New("boom")}
	require.NoError(t, s.Schedule(20*time.Millisecond, job))
	s.Start()

	assert.Eventually(t, func() bool { return job.runs.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
	checker.Check(2)
}

func TestScheduler_ShutdownCancelsInFlightRun(t *testing.T) {
	s, err := NewScheduler(time.Minute)
	require.NoError(t, err)

	job := &countingJob{block: make(chan struct{})}
	require.NoError(t, s.Schedule(10*time.Millisecond, job))
	s.Start()

	require.Eventually(t, func() bool { return job.runs.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	// Singleton mode: the blocked run was never overlapped
	assert.Equal(t, int32(1), job.runs.Load())
	assert.NoError(t, s.Shutdown(ctx), "second shutdown is a no-op")
}

func TestScheduler_NonPositiveIntervalDisablesJob(t *testing.T) {
	s, err := NewScheduler(0)
	require.NoError(t, err)

	job := &countingJob{}
	require.NoError(t, s.Schedule(0, job))
	s.Start()
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, s.Shutdown(context.Background()))

	assert.Zero(t, job.runs.Load())
}

type mockScorer struct{ mock.Mock }

func (m *mockScorer) ScorePendingMatches(ctx context.Context) ([]domain.ScoringResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ScoringResult), args.Error(1)
}

type mockRecomputer struct{ mock.Mock }

func (m *mockRecomputer) RecomputeActive(ctx context.Context) ([]domain.Scope, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Scope), args.Error(1)
}

func TestAutoScoreJob(t *testing.T) {
	t.Run("summarises results", func(t *testing.T) {
		scorer := new(mockScorer)
		scorer.On("ScorePendingMatches", mock.Anything).Return([]domain.ScoringResult{
			{MatchID: 1, Scored: 3, PointsAwarded: 80},
			{MatchID: 2, Scored: 1, Failures: []domain.ScoringFailure{{PredictionID: 7}}},
		}, nil)

		job := NewAutoScoreJob(scorer)
		assert.Equal(t, JobNameAutoScore, job.Name())
		assert.NoError(t, job.Process(context.Background()))
		scorer.AssertExpectations(t)
	})

	t.Run("propagates errors", func(t *testing.T) {
		scorer := new(mockScorer)
		scorer.On("ScorePendingMatches", mock.Anything).Return(nil, errors.New("db down"))

		err := NewAutoScoreJob(scorer).Process(context.Background())
		assert.EqualError(t, err, "db down")
	})
}

func TestLeaderboardRecomputeJob(t *testing.T) {
	rec := new(mockRecomputer)
	rec.On("RecomputeActive", mock.Anything).Return([]domain.Scope{domain.AllTimeScope()}, nil).Once()
	rec.On("RecomputeActive", mock.Anything).Return(nil, context.Canceled).Once()

	job := NewLeaderboardRecomputeJob(rec)
	assert.Equal(t, JobNameLeaderboardRecompute, job.Name())
	assert.NoError(t, job.Process(context.Background()))
	assert.ErrorIs(t, job.Process(context.Background()), context.Canceled)
	rec.AssertExpectations(t)
}
