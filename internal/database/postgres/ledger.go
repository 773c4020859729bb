package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// LedgerRepository implements repository.Ledger
type LedgerRepository struct {
	pool *pgxpool.Pool
}

var _ repository.Ledger = (*LedgerRepository)(nil)

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	return beginTx(ctx, r.pool)
}

func (r *LedgerRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, r.pool, userID, false)
}

func (r *LedgerRepository) SumTransactions(ctx context.Context, userID string) (int64, error) {
	return sumTransactions(ctx, r.pool, userID)
}

func (r *LedgerRepository) ListTransactions(ctx context.Context, userID string, page domain.Page) ([]domain.PointTransaction, int, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM point_transactions WHERE user_id = $1`, id).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListTransactions, err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT transaction_id, user_id::text, type, amount, description, reference_kind, reference_id, created_at
		FROM point_transactions
		WHERE user_id = $1
		ORDER BY transaction_id DESC
		LIMIT $2 OFFSET $3`, id, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListTransactions, err)
	}
	txs, err := pgx.CollectRows(rows, scanTransaction)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListTransactions, err)
	}
	return txs, total, nil
}

func (r *LedgerRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT user_id::text FROM users ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func scanTransaction(row pgx.CollectableRow) (domain.PointTransaction, error) {
	var pt domain.PointTransaction
	err := row.Scan(&pt.ID, &pt.UserID, &pt.Type, &pt.Amount, &pt.Description,
		&pt.Reference.Kind, &pt.Reference.ID, &pt.CreatedAt)
	return pt, err
}

func getUser(ctx context.Context, q querier, userID string, forUpdate bool) (*domain.User, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	sql := `SELECT user_id::text, username, points_balance, current_streak, max_streak, created_at
		FROM users WHERE user_id = $1`
	if forUpdate {
		sql += ` FOR UPDATE`
	}

	var u domain.User
	err = q.QueryRow(ctx, sql, id).Scan(&u.ID, &u.Username, &u.PointsBalance, &u.CurrentStreak, &u.MaxStreak, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound, ErrMsgFailedToGetUser)
	}
	return &u, nil
}

func sumTransactions(ctx context.Context, q querier, userID string) (int64, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return 0, err
	}
	var sum int64
	if err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0)::bigint FROM point_transactions WHERE user_id = $1`, id).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSumTransactions, err)
	}
	return sum, nil
}

// Transaction methods

func (t *pgTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	return getUser(ctx, t.tx, userID, true)
}

func (t *pgTx) UpdateUserStreak(ctx context.Context, userID string, current, max int) error {
	id, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE users SET current_streak = $2, max_streak = $3, updated_at = NOW()
		WHERE user_id = $1`, id, current, max)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	return expectRow(tag, domain.ErrUserNotFound)
}

func (t *pgTx) InsertTransaction(ctx context.Context, entry domain.LedgerEntry) (*domain.PointTransaction, error) {
	id, err := parseUserUUID(entry.UserID)
	if err != nil {
		return nil, err
	}

	pt := domain.PointTransaction{
		UserID:      entry.UserID,
		Type:        entry.Type,
		Amount:      entry.Amount,
		Description: entry.Description,
		Reference:   entry.Reference,
	}
	err = t.tx.QueryRow(ctx, `
		INSERT INTO point_transactions (user_id, type, amount, description, reference_kind, reference_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transaction_id, created_at`,
		id, entry.Type, entry.Amount, entry.Description, entry.Reference.Kind, entry.Reference.ID,
	).Scan(&pt.ID, &pt.CreatedAt)
	switch {
	case err == nil:
		return &pt, nil
	case isForeignKeyViolation(err):
		return nil, domain.ErrUserNotFound
	case isUniqueViolation(err):
		// Only prediction_win rows are unique per reference
		return nil, fmt.Errorf("%w: prediction %d already credited", domain.ErrAlreadyCalculated, entry.Reference.ID)
	default:
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToInsertTransaction, err)
	}
}

func (t *pgTx) AddToUserBalance(ctx context.Context, userID string, delta int64) error {
	id, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE users SET points_balance = points_balance + $2, updated_at = NOW()
		WHERE user_id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	return expectRow(tag, domain.ErrUserNotFound)
}

func (t *pgTx) SetUserBalance(ctx context.Context, userID string, balance int64) error {
	id, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	tag, err := t.tx.Exec(ctx, `
		UPDATE users SET points_balance = $2, updated_at = NOW()
		WHERE user_id = $1`, id, balance)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	return expectRow(tag, domain.ErrUserNotFound)
}

func (t *pgTx) SumTransactions(ctx context.Context, userID string) (int64, error) {
	return sumTransactions(ctx, t.tx, userID)
}

func (t *pgTx) ListScoredOutcomes(ctx context.Context, userID string) ([]domain.ScoredOutcome, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}
	rows, err := t.tx.Query(ctx, `
		SELECT prediction_id, points_earned, calculated_at
		FROM predictions
		WHERE user_id = $1 AND calculated_at IS NOT NULL
		ORDER BY calculated_at, prediction_id`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListPredictions, err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ScoredOutcome, error) {
		var o domain.ScoredOutcome
		err := row.Scan(&o.PredictionID, &o.PointsEarned, &o.CalculatedAt)
		return o, err
	})
}
