package ledger

import (
	"context"
	"fmt"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/logger"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// Validate checks an entry before it is written
func Validate(entry domain.LedgerEntry) error {
	if entry.UserID == "" {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if !entry.Type.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTransactionType, entry.Type)
	}
	if !entry.Type.AllowsAmount(entry.Amount) {
		return fmt.Errorf("%w: %s cannot carry %d", domain.ErrInvalidTransactionSign, entry.Type, entry.Amount)
	}
	if !entry.Reference.ValidFor(entry.Type) {
		return fmt.Errorf("%w: %s cannot reference %s:%d", domain.ErrInvalidReference, entry.Type, entry.Reference.Kind, entry.Reference.ID)
	}
	return nil
}

// Post appends entry and moves the cached balance in the caller's
// transaction. It is the only way points change; callers that need the
// debit and the originating write to succeed together pass their own tx.
// Post does not enforce a non-negative balance.
func Post(ctx context.Context, tx repository.LedgerTx, entry domain.LedgerEntry) (*domain.PointTransaction, error) {
	if err := Validate(entry); err != nil {
		return nil, err
	}

	pt, err := tx.InsertTransaction(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInsertTransactionFailed, err)
	}

	if err := tx.AddToUserBalance(ctx, entry.UserID, entry.Amount); err != nil {
		return nil, fmt.Errorf(ErrMsgUpdateBalanceFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgTransactionPosted,
		"user_id", entry.UserID,
		"type", entry.Type,
		"amount", entry.Amount,
		"reference", entry.Reference.Kind,
		"reference_id", entry.Reference.ID)

	return pt, nil
}
