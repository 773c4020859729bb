package repository

import (
	"context"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// Ledger defines the interface for point ledger persistence
type Ledger interface {
	BeginTx(ctx context.Context) (LedgerTx, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	SumTransactions(ctx context.Context, userID string) (int64, error)
	// ListTransactions returns one page, newest first, plus the total row count
	ListTransactions(ctx context.Context, userID string, page domain.Page) ([]domain.PointTransaction, int, error)
	ListUserIDs(ctx context.Context) ([]string, error)
}

// LedgerTx is the unit of work every balance mutation runs in
type LedgerTx interface {
	Tx
	UserTx
	InsertTransaction(ctx context.Context, entry domain.LedgerEntry) (*domain.PointTransaction, error)
	AddToUserBalance(ctx context.Context, userID string, delta int64) error
	SetUserBalance(ctx context.Context, userID string, balance int64) error
	SumTransactions(ctx context.Context, userID string) (int64, error)
	// ListScoredOutcomes returns the user's scored predictions in scoring order
	ListScoredOutcomes(ctx context.Context, userID string) ([]domain.ScoredOutcome, error)
}
