package repository

import (
	"context"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// UserTx gives row-locked access to a user's cached read-model fields
type UserTx interface {
	// GetUserForUpdate locks the user row until the transaction ends.
	// Returns domain.ErrUserNotFound when the user does not exist.
	GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error)
	UpdateUserStreak(ctx context.Context, userID string, current, max int) error
}
