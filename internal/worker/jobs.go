package worker

import (
	"context"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/logger"
)

// PendingScorer is the slice of the scoring service the auto-score job needs
type PendingScorer interface {
	ScorePendingMatches(ctx context.Context) ([]domain.ScoringResult, error)
}

// ActiveRecomputer is the slice of the leaderboard service the recompute job needs
type ActiveRecomputer interface {
	RecomputeActive(ctx context.Context) ([]domain.Scope, error)
}

// AutoScoreJob scores every finished match that has not been scored yet
type AutoScoreJob struct {
	scorer PendingScorer
}

// NewAutoScoreJob creates a new AutoScoreJob
func NewAutoScoreJob(scorer PendingScorer) *AutoScoreJob {
	return &AutoScoreJob{scorer: scorer}
}

func (j *AutoScoreJob) Name() string { return JobNameAutoScore }

func (j *AutoScoreJob) Process(ctx context.Context) error {
	results, err := j.scorer.ScorePendingMatches(ctx)
	if err != nil {
		return err
	}

	var scored, failed int
	var points int64
	for _, r := range results {
		scored += r.Scored
		failed += len(r.Failures)
		points += r.PointsAwarded
	}

	log := logger.FromContext(ctx)
	if failed > 0 {
		log.Warn(LogMsgAutoScorePartialFail, "failed", failed)
	}
	log.Info(LogMsgAutoScoreCompleted, "matches", len(results), "predictions", scored, "points_awarded", points)
	return nil
}

// LeaderboardRecomputeJob rebuilds the active leaderboards
type LeaderboardRecomputeJob struct {
	leaderboards ActiveRecomputer
}

// NewLeaderboardRecomputeJob creates a new LeaderboardRecomputeJob
func NewLeaderboardRecomputeJob(leaderboards ActiveRecomputer) *LeaderboardRecomputeJob {
	return &LeaderboardRecomputeJob{leaderboards: leaderboards}
}

func (j *LeaderboardRecomputeJob) Name() string { return JobNameLeaderboardRecompute }

func (j *LeaderboardRecomputeJob) Process(ctx context.Context) error {
	scopes, err := j.leaderboards.RecomputeActive(ctx)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgRecomputeCompleted, "scopes", len(scopes))
	return nil
}
