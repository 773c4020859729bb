package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// ScoringRepository implements repository.Scoring
type ScoringRepository struct {
	pool *pgxpool.Pool
}

var _ repository.Scoring = (*ScoringRepository)(nil)

// NewScoringRepository creates a new ScoringRepository
func NewScoringRepository(pool *pgxpool.Pool) *ScoringRepository {
	return &ScoringRepository{pool: pool}
}

func (r *ScoringRepository) BeginTx(ctx context.Context) (repository.ScoringTx, error) {
	tx, err := beginTx(ctx, r.pool)
	if err != nil {
		return nil, err
	}
	return scoringTx{tx}, nil
}

func (r *ScoringRepository) ListFinishedUnscoredMatches(ctx context.Context, limit int) ([]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT match_id FROM matches
		WHERE status = 'finished' AND scored_at IS NULL
			AND home_score IS NOT NULL AND away_score IS NOT NULL
		ORDER BY match_id
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetMatch, err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[int64])
}

func (t *pgTx) GetMatchForUpdate(ctx context.Context, matchID int64) (*domain.Match, error) {
	return getMatch(ctx, t.tx, matchID, true)
}

func (t *pgTx) ListUnscoredPredictionsForUpdate(ctx context.Context, matchID int64) ([]domain.Prediction, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+predictionColumns+`
		FROM predictions
		WHERE match_id = $1 AND calculated_at IS NULL
		ORDER BY prediction_id
		FOR UPDATE`, matchID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	return collectPredictions(rows)
}

func (t *pgTx) SavePredictionScore(ctx context.Context, predictionID int64, score domain.PredictionScore) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE predictions
		SET points_earned = $2, is_correct_score = $3, is_correct_difference = $4,
			is_correct_winner = $5, calculated_at = $6, updated_at = $6
		WHERE prediction_id = $1 AND calculated_at IS NULL`,
		predictionID, score.PointsEarned, score.IsCorrectScore, score.IsCorrectDifference,
		score.IsCorrectWinner, score.CalculatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSavePrediction, err)
	}
	return expectRow(tag, domain.ErrAlreadyCalculated)
}

func (t *pgTx) MarkMatchScored(ctx context.Context, matchID int64, scoredAt time.Time) error {
	tag, err := t.tx.Exec(ctx, `UPDATE matches SET scored_at = $2 WHERE match_id = $1`, matchID, scoredAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToGetMatch, err)
	}
	return expectRow(tag, domain.ErrMatchNotFound)
}
