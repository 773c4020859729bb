package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/logger"
	"github.com/osse101/Scoreline_Go/internal/repository"
	"github.com/osse101/Scoreline_Go/internal/streak"
)

// Service defines the interface for the points ledger
type Service interface {
	// Append posts a single entry in its own transaction
	Append(ctx context.Context, entry domain.LedgerEntry) (*domain.PointTransaction, error)
	// Spend debits cost after checking the ledger balance covers it
	Spend(ctx context.Context, userID string, txType domain.TransactionType, cost int64, description string, ref domain.Reference) (*domain.PointTransaction, error)
	Balance(ctx context.Context, userID string) (int64, error)
	History(ctx context.Context, userID string, page domain.Page) (*domain.PointHistory, error)
	// RebuildFromLedger recomputes the cached balance and streak fields
	RebuildFromLedger(ctx context.Context, userID string) (*domain.User, error)
	RebuildAll(ctx context.Context) (int, error)
}

type service struct {
	repo repository.Ledger
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo}
}

func (s *service) Append(ctx context.Context, entry domain.LedgerEntry) (*domain.PointTransaction, error) {
	if err := Validate(entry); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetUserForUpdate(ctx, entry.UserID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}

	pt, err := Post(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return pt, nil
}

func (s *service) Spend(ctx context.Context, userID string, txType domain.TransactionType, cost int64, description string, ref domain.Reference) (*domain.PointTransaction, error) {
	if cost <= 0 {
		return nil, fmt.Errorf("%w: cost must be positive", domain.ErrInvalidInput)
	}
	entry := domain.LedgerEntry{
		UserID:      userID,
		Type:        txType,
		Amount:      -cost,
		Description: description,
		Reference:   ref,
	}
	if err := Validate(entry); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// The row lock serializes concurrent spends for the same user
	if _, err := tx.GetUserForUpdate(ctx, userID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}

	balance, err := tx.SumTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSumFailed, err)
	}
	if balance < cost {
		return nil, fmt.Errorf("%w: balance %d, cost %d", domain.ErrInsufficientPoints, balance, cost)
	}

	pt, err := Post(ctx, tx, entry)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return pt, nil
}

func (s *service) Balance(ctx context.Context, userID string) (int64, error) {
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return 0, fmt.Errorf(ErrMsgGetUserFailed, err)
	}
	balance, err := s.repo.SumTransactions(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgSumFailed, err)
	}
	return balance, nil
}

func (s *service) History(ctx context.Context, userID string, page domain.Page) (*domain.PointHistory, error) {
	page = page.Normalize()

	balance, err := s.Balance(ctx, userID)
	if err != nil {
		return nil, err
	}

	txs, total, err := s.repo.ListTransactions(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	if txs == nil {
		txs = []domain.PointTransaction{}
	}

	return &domain.PointHistory{
		UserID:       userID,
		Balance:      balance,
		Transactions: txs,
		Total:        total,
		Limit:        page.Limit,
		Offset:       page.Offset,
	}, nil
}

func (s *service) RebuildFromLedger(ctx context.Context, userID string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}

	balance, err := tx.SumTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSumFailed, err)
	}

	outcomes, err := tx.ListScoredOutcomes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadOutcomesFailed, err)
	}
	state := streak.Replay(outcomes)

	if user.PointsBalance != balance {
		log.Warn(LogMsgBalanceDrift, "user_id", userID, "cached", user.PointsBalance, "ledger", balance)
	}
	if user.CurrentStreak != state.Current || user.MaxStreak != state.Max {
		log.Warn(LogMsgStreakDrift, "user_id", userID,
			"cached_current", user.CurrentStreak, "cached_max", user.MaxStreak,
			"replayed_current", state.Current, "replayed_max", state.Max)
	}

	if err := tx.SetUserBalance(ctx, userID, balance); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateBalanceFailed, err)
	}
	if err := tx.UpdateUserStreak(ctx, userID, state.Current, state.Max); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateBalanceFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	user.PointsBalance = balance
	user.CurrentStreak = state.Current
	user.MaxStreak = state.Max

	log.Info(LogMsgUserRebuilt, "user_id", userID, "balance", balance, "current_streak", state.Current)
	return user, nil
}

func (s *service) RebuildAll(ctx context.Context) (int, error) {
	ids, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgListFailed, err)
	}

	rebuilt := 0
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return rebuilt, err
		}
		if _, err := s.RebuildFromLedger(ctx, id); err != nil {
			return rebuilt, fmt.Errorf(ErrMsgRebuildFailed, id, err)
		}
		rebuilt++
	}

	logger.FromContext(ctx).Info(LogMsgRebuildAllDone, "users", rebuilt)
	return rebuilt, nil
}
