package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Scoreline_Go/internal/repository"
)

// pgTx implements every transactional repository method over one pgx.Tx.
// The scoring and champion wrappers below add the typed Savepoint each
// interface needs.
type pgTx struct {
	tx pgx.Tx
}

var _ repository.LedgerTx = (*pgTx)(nil)

func beginTx(ctx context.Context, pool *pgxpool.Pool) (*pgTx, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &pgTx{tx: tx}, nil
}

// Commit commits the transaction, or releases the savepoint when t is nested
func (t *pgTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction or to the savepoint when t is nested
func (t *pgTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// savepoint opens a pgx pseudo nested transaction (SAVEPOINT)
func (t *pgTx) savepoint(ctx context.Context) (*pgTx, error) {
	nested, err := t.tx.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreateSavepoint, err)
	}
	return &pgTx{tx: nested}, nil
}

type scoringTx struct{ *pgTx }

var _ repository.ScoringTx = scoringTx{}

func (t scoringTx) Savepoint(ctx context.Context) (repository.ScoringTx, error) {
	sp, err := t.savepoint(ctx)
	if err != nil {
		return nil, err
	}
	return scoringTx{sp}, nil
}

type championTx struct{ *pgTx }

var _ repository.ChampionTx = championTx{}

func (t championTx) Savepoint(ctx context.Context) (repository.ChampionTx, error) {
	sp, err := t.savepoint(ctx)
	if err != nil {
		return nil, err
	}
	return championTx{sp}, nil
}
