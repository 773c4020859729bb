package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

const matchColumns = `match_id, season_id, COALESCE(round_id, 0), home_team_id, away_team_id,
	home_score, away_score, status, lock_time, kickoff_at, scored_at`

const predictionColumns = `prediction_id, user_id::text, match_id, predicted_home_score, predicted_away_score,
	predicted_outcome, points_earned, is_correct_score, is_correct_difference, is_correct_winner,
	streak_multiplier::float8, calculated_at, created_at, updated_at`

// PredictionRepository implements repository.Prediction
type PredictionRepository struct {
	pool *pgxpool.Pool
}

var _ repository.Prediction = (*PredictionRepository)(nil)

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(pool *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{pool: pool}
}

func (r *PredictionRepository) GetMatch(ctx context.Context, matchID int64) (*domain.Match, error) {
	return getMatch(ctx, r.pool, matchID, false)
}

func (r *PredictionRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, r.pool, userID, false)
}

func (r *PredictionRepository) GetPrediction(ctx context.Context, predictionID int64) (*domain.Prediction, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+predictionColumns+` FROM predictions WHERE prediction_id = $1`, predictionID)
	p, err := scanPrediction(row)
	if err != nil {
		return nil, notFound(err, domain.ErrPredictionNotFound, ErrMsgFailedToGetPrediction)
	}
	return p, nil
}

func (r *PredictionRepository) GetPredictionByUserMatch(ctx context.Context, userID string, matchID int64) (*domain.Prediction, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(ctx, `SELECT `+predictionColumns+`
		FROM predictions WHERE user_id = $1 AND match_id = $2`, id, matchID)
	p, err := scanPrediction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetPrediction, err)
	}
	return p, nil
}

func (r *PredictionRepository) CreatePrediction(ctx context.Context, p *domain.Prediction) error {
	id, err := parseUserUUID(p.UserID)
	if err != nil {
		return err
	}
	err = r.pool.QueryRow(ctx, `
		INSERT INTO predictions (user_id, match_id, predicted_home_score, predicted_away_score, predicted_outcome, streak_multiplier)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING prediction_id, created_at, updated_at`,
		id, p.MatchID, p.PredictedHomeScore, p.PredictedAwayScore, p.PredictedOutcome, p.StreakMultiplier,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrAlreadyPredicted
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	default:
		return fmt.Errorf("%s: %w", ErrMsgFailedToSavePrediction, err)
	}
}

func (r *PredictionRepository) UpdatePredictionScores(ctx context.Context, predictionID int64, home, away int, outcome domain.Outcome, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE predictions
		SET predicted_home_score = $2, predicted_away_score = $3, predicted_outcome = $4, updated_at = $5
		WHERE prediction_id = $1 AND calculated_at IS NULL`,
		predictionID, home, away, outcome, updatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSavePrediction, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Tell a scored row apart from a missing one
	var scored bool
	err = r.pool.QueryRow(ctx,
		`SELECT calculated_at IS NOT NULL FROM predictions WHERE prediction_id = $1`, predictionID).Scan(&scored)
	if err != nil {
		return notFound(err, domain.ErrPredictionNotFound, ErrMsgFailedToGetPrediction)
	}
	return domain.ErrAlreadyCalculated
}

func (r *PredictionRepository) ListUserPredictions(ctx context.Context, userID string, page domain.Page) ([]domain.Prediction, int, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM predictions WHERE user_id = $1`, id).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}

	rows, err := r.pool.Query(ctx, `SELECT `+predictionColumns+`
		FROM predictions WHERE user_id = $1
		ORDER BY prediction_id DESC
		LIMIT $2 OFFSET $3`, id, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	preds, err := collectPredictions(rows)
	if err != nil {
		return nil, 0, err
	}
	return preds, total, nil
}

func getMatch(ctx context.Context, q querier, matchID int64, forUpdate bool) (*domain.Match, error) {
	sql := `SELECT ` + matchColumns + ` FROM matches WHERE match_id = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}
	var m domain.Match
	err := q.QueryRow(ctx, sql, matchID).Scan(&m.ID, &m.SeasonID, &m.RoundID, &m.HomeTeamID, &m.AwayTeamID,
		&m.HomeScore, &m.AwayScore, &m.Status, &m.LockTime, &m.KickoffAt, &m.ScoredAt)
	if err != nil {
		return nil, notFound(err, domain.ErrMatchNotFound, ErrMsgFailedToGetMatch)
	}
	return &m, nil
}

func scanPrediction(row pgx.Row) (*domain.Prediction, error) {
	var p domain.Prediction
	err := row.Scan(&p.ID, &p.UserID, &p.MatchID, &p.PredictedHomeScore, &p.PredictedAwayScore,
		&p.PredictedOutcome, &p.PointsEarned, &p.IsCorrectScore, &p.IsCorrectDifference, &p.IsCorrectWinner,
		&p.StreakMultiplier, &p.CalculatedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectPredictions(rows pgx.Rows) ([]domain.Prediction, error) {
	preds, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Prediction, error) {
		p, err := scanPrediction(row)
		if err != nil {
			return domain.Prediction{}, err
		}
		return *p, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	return preds, nil
}
