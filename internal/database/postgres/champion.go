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

const seasonColumns = `s.season_id, s.name, s.start_date, s.end_date,
	ARRAY(SELECT st.team_id FROM season_teams st WHERE st.season_id = s.season_id ORDER BY st.team_id)`

const championColumns = `champion_prediction_id, user_id::text, season_id, predicted_team_id, confidence_level,
	points_wagered, points_earned, status, calculated_at, created_at`

// ChampionRepository implements repository.Champion
type ChampionRepository struct {
	pool *pgxpool.Pool
}

var _ repository.Champion = (*ChampionRepository)(nil)

// NewChampionRepository creates a new ChampionRepository
func NewChampionRepository(pool *pgxpool.Pool) *ChampionRepository {
	return &ChampionRepository{pool: pool}
}

func (r *ChampionRepository) BeginTx(ctx context.Context) (repository.ChampionTx, error) {
	tx, err := beginTx(ctx, r.pool)
	if err != nil {
		return nil, err
	}
	return championTx{tx}, nil
}

func (r *ChampionRepository) GetSeason(ctx context.Context, seasonID int64) (*domain.Season, error) {
	return getSeason(ctx, r.pool, seasonID)
}

func (r *ChampionRepository) GetSeasonChampion(ctx context.Context, seasonID int64) (*domain.SeasonChampion, error) {
	var sc domain.SeasonChampion
	err := r.pool.QueryRow(ctx, `
		SELECT season_id, champion_team_id, confirmed_at
		FROM season_champions WHERE season_id = $1`, seasonID,
	).Scan(&sc.SeasonID, &sc.ChampionTeamID, &sc.ConfirmedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSeason, err)
	}
	return &sc, nil
}

func (r *ChampionRepository) ListUserChampionPredictions(ctx context.Context, userID string) ([]domain.ChampionPrediction, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+championColumns+`
		FROM champion_predictions WHERE user_id = $1
		ORDER BY season_id DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListChampions, err)
	}
	return collectChampionPredictions(rows)
}

func getSeason(ctx context.Context, q querier, seasonID int64) (*domain.Season, error) {
	var s domain.Season
	err := q.QueryRow(ctx, `SELECT `+seasonColumns+` FROM seasons s WHERE s.season_id = $1`, seasonID).
		Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.TeamIDs)
	if err != nil {
		return nil, notFound(err, domain.ErrSeasonNotFound, ErrMsgFailedToGetSeason)
	}
	return &s, nil
}

func scanChampionPrediction(row pgx.Row) (*domain.ChampionPrediction, error) {
	var cp domain.ChampionPrediction
	err := row.Scan(&cp.ID, &cp.UserID, &cp.SeasonID, &cp.PredictedTeamID, &cp.ConfidenceLevel,
		&cp.PointsWagered, &cp.PointsEarned, &cp.Status, &cp.CalculatedAt, &cp.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func collectChampionPredictions(rows pgx.Rows) ([]domain.ChampionPrediction, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ChampionPrediction, error) {
		cp, err := scanChampionPrediction(row)
		if err != nil {
			return domain.ChampionPrediction{}, err
		}
		return *cp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListChampions, err)
	}
	return out, nil
}

// Transaction methods

func (t *pgTx) GetSeason(ctx context.Context, seasonID int64) (*domain.Season, error) {
	return getSeason(ctx, t.tx, seasonID)
}

func (t *pgTx) GetChampionPrediction(ctx context.Context, userID string, seasonID int64) (*domain.ChampionPrediction, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	cp, err := scanChampionPrediction(t.tx.QueryRow(ctx, `SELECT `+championColumns+`
		FROM champion_predictions WHERE user_id = $1 AND season_id = $2`, id, seasonID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListChampions, err)
	}
	return cp, nil
}

func (t *pgTx) CreateChampionPrediction(ctx context.Context, cp *domain.ChampionPrediction) error {
	id, err := parseUserUUID(cp.UserID)
	if err != nil {
		return err
	}
	if cp.Status == "" {
		cp.Status = domain.ChampionStatusPending
	}
	err = t.tx.QueryRow(ctx, `
		INSERT INTO champion_predictions (user_id, season_id, predicted_team_id, confidence_level, points_wagered, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING champion_prediction_id, created_at`,
		id, cp.SeasonID, cp.PredictedTeamID, cp.ConfidenceLevel, cp.PointsWagered, cp.Status,
	).Scan(&cp.ID, &cp.CreatedAt)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrAlreadyPredicted
	default:
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveChampion, err)
	}
}

// GetSeasonChampionForUpdate locks the season row, so concurrent resolvers
// serialise even before a champion row exists.
func (t *pgTx) GetSeasonChampionForUpdate(ctx context.Context, seasonID int64) (*domain.SeasonChampion, error) {
	var (
		teamID      *int64
		confirmedAt *time.Time
	)
	err := t.tx.QueryRow(ctx, `
		SELECT sc.champion_team_id, sc.confirmed_at
		FROM seasons s
		LEFT JOIN season_champions sc ON sc.season_id = s.season_id
		WHERE s.season_id = $1
		FOR UPDATE OF s`, seasonID,
	).Scan(&teamID, &confirmedAt)
	if err != nil {
		return nil, notFound(err, domain.ErrSeasonNotFound, ErrMsgFailedToGetSeason)
	}
	if teamID == nil {
		return nil, nil
	}
	return &domain.SeasonChampion{SeasonID: seasonID, ChampionTeamID: *teamID, ConfirmedAt: *confirmedAt}, nil
}

func (t *pgTx) InsertSeasonChampion(ctx context.Context, sc *domain.SeasonChampion) error {
	_, err := t.tx.Exec(ctx, `
		INSERT INTO season_champions (season_id, champion_team_id, confirmed_at)
		VALUES ($1, $2, $3)`, sc.SeasonID, sc.ChampionTeamID, sc.ConfirmedAt)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrAlreadyResolved
	default:
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveChampion, err)
	}
}

func (t *pgTx) ListPendingChampionPredictionsForUpdate(ctx context.Context, seasonID int64) ([]domain.ChampionPrediction, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+championColumns+`
		FROM champion_predictions
		WHERE season_id = $1 AND calculated_at IS NULL
		ORDER BY champion_prediction_id
		FOR UPDATE`, seasonID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListChampions, err)
	}
	return collectChampionPredictions(rows)
}

func (t *pgTx) SettleChampionPrediction(ctx context.Context, id int64, status domain.ChampionStatus, pointsEarned int64, calculatedAt time.Time) error {
	tag, err := t.tx.Exec(ctx, `
		UPDATE champion_predictions
		SET status = $2, points_earned = $3, calculated_at = $4
		WHERE champion_prediction_id = $1 AND calculated_at IS NULL`,
		id, status, pointsEarned, calculatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveChampion, err)
	}
	return expectRow(tag, domain.ErrAlreadyCalculated)
}
