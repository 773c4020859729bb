package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

const leaderboardColumns = `le.user_id::text, u.username, le.total_points, le.total_predictions,
	le.correct_scores, le.correct_differences, le.correct_winners, le.points_wagered, le.rank, le.computed_at`

// LeaderboardRepository implements repository.Leaderboard
type LeaderboardRepository struct {
	pool *pgxpool.Pool
}

var _ repository.Leaderboard = (*LeaderboardRepository)(nil)

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(pool *pgxpool.Pool) *LeaderboardRepository {
	return &LeaderboardRepository{pool: pool}
}

// AggregateStandings sums positive ledger rows belonging to the scope and
// counts scored predictions on its matches. $1 is the scope kind and $2 its
// id; all_time matches every row. Prediction credits follow their match,
// champion credits follow their season on season scopes, and any other
// credit is placed by the date window.
func (r *LeaderboardRepository) AggregateStandings(ctx context.Context, scope domain.Scope, window domain.ScopeWindow) ([]domain.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, `
		WITH points AS (
			SELECT t.user_id, SUM(t.amount)::bigint AS total_points
			FROM point_transactions t
			LEFT JOIN predictions p
				ON t.reference_kind = 'prediction' AND p.prediction_id = t.reference_id
			LEFT JOIN matches m ON m.match_id = p.match_id
			LEFT JOIN champion_predictions cp
				ON t.reference_kind = 'champion_prediction' AND cp.champion_prediction_id = t.reference_id
			WHERE t.amount > 0
				AND ($1 = 'all_time'
					OR (m.match_id IS NOT NULL
						AND (($1 = 'season' AND m.season_id = $2) OR ($1 = 'round' AND m.round_id = $2)))
					OR ($1 = 'season' AND cp.champion_prediction_id IS NOT NULL AND cp.season_id = $2)
					OR (m.match_id IS NULL
						AND NOT ($1 = 'season' AND cp.champion_prediction_id IS NOT NULL)
						AND ($3::timestamptz IS NULL OR t.created_at >= $3)
						AND ($4::timestamptz IS NULL OR t.created_at <= $4)))
			GROUP BY t.user_id
		),
		scored AS (
			SELECT p.user_id,
				COUNT(*)::int AS total_predictions,
				COUNT(*) FILTER (WHERE p.is_correct_score)::int AS correct_scores,
				COUNT(*) FILTER (WHERE p.is_correct_difference)::int AS correct_differences,
				COUNT(*) FILTER (WHERE p.is_correct_winner)::int AS correct_winners
			FROM predictions p
			JOIN matches m ON m.match_id = p.match_id
			WHERE p.calculated_at IS NOT NULL
				AND ($1 = 'all_time'
					OR ($1 = 'season' AND m.season_id = $2)
					OR ($1 = 'round' AND m.round_id = $2))
			GROUP BY p.user_id
		)
		SELECT u.user_id::text, u.username,
			COALESCE(pt.total_points, 0),
			COALESCE(s.total_predictions, 0),
			COALESCE(s.correct_scores, 0),
			COALESCE(s.correct_differences, 0),
			COALESCE(s.correct_winners, 0)
		FROM users u
		LEFT JOIN points pt ON pt.user_id = u.user_id
		LEFT JOIN scored s ON s.user_id = u.user_id
		WHERE pt.user_id IS NOT NULL OR s.user_id IS NOT NULL`,
		string(scope.Kind), scope.ID, window.From, window.To)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAggregate, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LeaderboardEntry, error) {
		var e domain.LeaderboardEntry
		err := row.Scan(&e.UserID, &e.Username, &e.TotalPoints, &e.TotalPredictions,
			&e.CorrectScores, &e.CorrectDifferences, &e.CorrectWinners)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAggregate, err)
	}
	return out, nil
}

func (r *LeaderboardRepository) AggregateChampionStandings(ctx context.Context, seasonID int64) ([]domain.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cp.user_id::text, u.username, cp.points_earned, cp.points_wagered
		FROM champion_predictions cp
		JOIN users u ON u.user_id = cp.user_id
		WHERE cp.season_id = $1`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAggregate, err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.LeaderboardEntry, error) {
		var e domain.LeaderboardEntry
		err := row.Scan(&e.UserID, &e.Username, &e.TotalPoints, &e.PointsWagered)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToAggregate, err)
	}
	return out, nil
}

// ReplaceEntries deletes and re-copies the scope's rows in one transaction,
// so readers see either the old or the new leaderboard.
func (r *LeaderboardRepository) ReplaceEntries(ctx context.Context, scope domain.Scope, entries []domain.LeaderboardEntry) error {
	tx, err := beginTx(ctx, r.pool)
	if err != nil {
		return err
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.tx.Exec(ctx,
		`DELETE FROM leaderboard_entries WHERE scope_kind = $1 AND scope_id = $2`,
		string(scope.Kind), scope.ID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReplaceLeaderboard, err)
	}

	if len(entries) > 0 {
		rows := make([][]any, 0, len(entries))
		for _, e := range entries {
			id, err := parseUserUUID(e.UserID)
			if err != nil {
				return err
			}
			rows = append(rows, []any{
				string(scope.Kind), scope.ID, id, e.TotalPoints, e.TotalPredictions,
				e.CorrectScores, e.CorrectDifferences, e.CorrectWinners, e.PointsWagered, e.Rank, e.ComputedAt,
			})
		}
		_, err := tx.tx.CopyFrom(ctx,
			pgx.Identifier{"leaderboard_entries"},
			[]string{"scope_kind", "scope_id", "user_id", "total_points", "total_predictions",
				"correct_scores", "correct_differences", "correct_winners", "points_wagered", "rank", "computed_at"},
			pgx.CopyFromRows(rows))
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReplaceLeaderboard, err)
		}
	}

	return tx.Commit(ctx)
}

func (r *LeaderboardRepository) GetEntries(ctx context.Context, scope domain.Scope, page domain.Page) ([]domain.LeaderboardEntry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM leaderboard_entries WHERE scope_kind = $1 AND scope_id = $2`,
		string(scope.Kind), scope.ID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadLeaderboard, err)
	}

	rows, err := r.pool.Query(ctx, `SELECT `+leaderboardColumns+`
		FROM leaderboard_entries le
		JOIN users u ON u.user_id = le.user_id
		WHERE le.scope_kind = $1 AND le.scope_id = $2
		ORDER BY le.rank
		LIMIT $3 OFFSET $4`, string(scope.Kind), scope.ID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadLeaderboard, err)
	}
	entries, err := pgx.CollectRows(rows, scanLeaderboardEntry)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadLeaderboard, err)
	}
	return entries, total, nil
}

func (r *LeaderboardRepository) GetUserEntry(ctx context.Context, scope domain.Scope, userID string) (*domain.LeaderboardEntry, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+leaderboardColumns+`
		FROM leaderboard_entries le
		JOIN users u ON u.user_id = le.user_id
		WHERE le.scope_kind = $1 AND le.scope_id = $2 AND le.user_id = $3`,
		string(scope.Kind), scope.ID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadLeaderboard, err)
	}
	e, err := pgx.CollectExactlyOneRow(rows, scanLeaderboardEntry)
	if err != nil {
		return nil, notFound(err, domain.ErrNotRanked, ErrMsgFailedToReadLeaderboard)
	}
	return &e, nil
}

func (r *LeaderboardRepository) GetSeason(ctx context.Context, seasonID int64) (*domain.Season, error) {
	return getSeason(ctx, r.pool, seasonID)
}

func (r *LeaderboardRepository) GetRound(ctx context.Context, roundID int64) (*domain.Round, error) {
	var rd domain.Round
	err := r.pool.QueryRow(ctx, `
		SELECT round_id, season_id, name, start_date, end_date
		FROM rounds WHERE round_id = $1`, roundID,
	).Scan(&rd.ID, &rd.SeasonID, &rd.Name, &rd.StartDate, &rd.EndDate)
	if err != nil {
		return nil, notFound(err, domain.ErrRoundNotFound, ErrMsgFailedToGetRound)
	}
	return &rd, nil
}

func (r *LeaderboardRepository) ListSeasons(ctx context.Context) ([]domain.Season, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+seasonColumns+` FROM seasons s ORDER BY s.season_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSeason, err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Season, error) {
		var s domain.Season
		err := row.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.TeamIDs)
		return s, err
	})
}

func (r *LeaderboardRepository) ListRounds(ctx context.Context) ([]domain.Round, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT round_id, season_id, name, start_date, end_date
		FROM rounds ORDER BY round_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRound, err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Round, error) {
		var rd domain.Round
		err := row.Scan(&rd.ID, &rd.SeasonID, &rd.Name, &rd.StartDate, &rd.EndDate)
		return rd, err
	})
}

func scanLeaderboardEntry(row pgx.CollectableRow) (domain.LeaderboardEntry, error) {
	var e domain.LeaderboardEntry
	err := row.Scan(&e.UserID, &e.Username, &e.TotalPoints, &e.TotalPredictions,
		&e.CorrectScores, &e.CorrectDifferences, &e.CorrectWinners, &e.PointsWagered, &e.Rank, &e.ComputedAt)
	return e, err
}
