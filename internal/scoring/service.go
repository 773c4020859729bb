package scoring

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Scoreline_Go/internal/concurrency"
	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/event"
	"github.com/osse101/Scoreline_Go/internal/ledger"
	"github.com/osse101/Scoreline_Go/internal/logger"
	"github.com/osse101/Scoreline_Go/internal/repository"
	"github.com/osse101/Scoreline_Go/internal/streak"
)

// Service defines the interface for match scoring
type Service interface {
	// ScoreMatch scores every unscored prediction of a finished match.
	// Re-running it is a no-op for predictions that were already scored.
	ScoreMatch(ctx context.Context, matchID int64) (*domain.ScoringResult, error)
	// ScorePendingMatches scores finished matches that have not been marked scored
	ScorePendingMatches(ctx context.Context) ([]domain.ScoringResult, error)
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

type service struct {
	repo      repository.Scoring
	tracker   *streak.Tracker
	locks     *concurrency.LockManager
	publisher EventPublisher
	now       func() time.Time
}

// NewService creates a new scoring service
func NewService(repo repository.Scoring, tracker *streak.Tracker, locks *concurrency.LockManager, publisher EventPublisher) Service {
	return &service{
		repo:      repo,
		tracker:   tracker,
		locks:     locks,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) ScoreMatch(ctx context.Context, matchID int64) (*domain.ScoringResult, error) {
	log := logger.FromContext(ctx)

	// In-process exclusion; the row lock below covers other instances
	lock := s.locks.GetLock(concurrency.MatchKey(matchID))
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	match, err := tx.GetMatchForUpdate(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLockMatchFailed, err)
	}
	if !match.IsFinished() {
		return nil, fmt.Errorf("%w: match %d is %s", domain.ErrMatchNotFinished, matchID, match.Status)
	}

	predictions, err := tx.ListUnscoredPredictionsForUpdate(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadPredictionsFailed, err)
	}

	result := &domain.ScoringResult{MatchID: matchID, TierCounts: map[string]int{}}
	if len(predictions) == 0 && match.IsScored() {
		log.Info(LogMsgMatchAlreadyScored, "match_id", matchID)
		return result, nil
	}

	log.Info(LogMsgScoringStarted, "match_id", matchID, "predictions", len(predictions))

	actual := Scoreline{Home: *match.HomeScore, Away: *match.AwayScore}
	scoredAt := s.now()

	for i := range predictions {
		p := &predictions[i]
		verdict, points, err := s.scorePrediction(ctx, tx, p, actual, scoredAt)
		if err != nil {
			log.Warn(LogMsgPredictionScoreFailed, "match_id", matchID, "prediction_id", p.ID, "user_id", p.UserID, "error", err)
			result.Failures = append(result.Failures, domain.ScoringFailure{
				PredictionID: p.ID,
				UserID:       p.UserID,
				Reason:       err.Error(),
			})
			continue
		}
		result.Scored++
		result.PointsAwarded += points
		result.TierCounts[verdict.Tier]++
	}

	// A match with failed predictions stays unscored so the next run retries them
	if len(result.Failures) == 0 {
		if err := tx.MarkMatchScored(ctx, matchID, scoredAt); err != nil {
			return nil, fmt.Errorf(ErrMsgMarkScoredFailed, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	log.Info(LogMsgScoringCompleted,
		"match_id", matchID,
		"scored", result.Scored,
		"failed", len(result.Failures),
		"points_awarded", result.PointsAwarded)

	if s.publisher != nil && (result.Scored > 0 || len(result.Failures) > 0) {
		s.publisher.PublishWithRetry(ctx, event.NewMatchScoredEvent(match, result, scoredAt))
	}

	return result, nil
}

// scorePrediction writes the verdict, the ledger credit and the streak
// update for one prediction inside a savepoint, so all three land or none do.
func (s *service) scorePrediction(ctx context.Context, tx repository.ScoringTx, p *domain.Prediction, actual Scoreline, scoredAt time.Time) (Verdict, int64, error) {
	sp, err := tx.Savepoint(ctx)
	if err != nil {
		return Verdict{}, 0, fmt.Errorf(ErrMsgSavepointFailed, err)
	}
	defer repository.SafeRollback(ctx, sp)

	verdict := Evaluate(Scoreline{Home: p.PredictedHomeScore, Away: p.PredictedAwayScore}, actual)
	points := ApplyMultiplier(verdict.BasePoints, p.StreakMultiplier)

	if err := sp.SavePredictionScore(ctx, p.ID, domain.PredictionScore{
		PointsEarned:        points,
		IsCorrectScore:      verdict.IsCorrectScore,
		IsCorrectDifference: verdict.IsCorrectDifference,
		IsCorrectWinner:     verdict.IsCorrectWinner,
		CalculatedAt:        scoredAt,
	}); err != nil {
		return Verdict{}, 0, fmt.Errorf(ErrMsgSaveScoreFailed, err)
	}

	if points > 0 {
		if _, err := ledger.Post(ctx, sp, domain.LedgerEntry{
			UserID:      p.UserID,
			Type:        domain.TxPredictionWin,
			Amount:      points,
			Description: fmt.Sprintf(PredictionWinDescriptionFormat, p.ID, verdict.Tier),
			Reference:   domain.PredictionReference(p.ID),
		}); err != nil {
			return Verdict{}, 0, fmt.Errorf(ErrMsgLedgerPostFailed, err)
		}
	}

	if _, err := s.tracker.OnPredictionScored(ctx, sp, p.UserID, points > 0); err != nil {
		return Verdict{}, 0, fmt.Errorf(ErrMsgStreakFailed, err)
	}

	if err := sp.Commit(ctx); err != nil {
		return Verdict{}, 0, err
	}

	logger.FromContext(ctx).Debug(LogMsgPredictionScored,
		"prediction_id", p.ID,
		"user_id", p.UserID,
		"tier", verdict.Tier,
		"multiplier", p.StreakMultiplier,
		"points", points)

	return verdict, points, nil
}

func (s *service) ScorePendingMatches(ctx context.Context) ([]domain.ScoringResult, error) {
	log := logger.FromContext(ctx)

	ids, err := s.repo.ListFinishedUnscoredMatches(ctx, DefaultPendingBatchSize)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListPendingFailed, err)
	}

	results := make([]domain.ScoringResult, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		result, err := s.ScoreMatch(ctx, id)
		if err != nil {
			log.Error(LogMsgPendingMatchFailed, "match_id", id, "error", err)
			continue
		}
		results = append(results, *result)
	}

	if len(ids) > 0 {
		log.Info(LogMsgPendingScored, "matches", len(ids), "succeeded", len(results))
	}
	return results, nil
}
