package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound           = "not found"
	ErrMsgUserNotFound       = "user not found"
	ErrMsgMatchNotFound      = "match not found"
	ErrMsgSeasonNotFound     = "season not found"
	ErrMsgRoundNotFound      = "round not found"
	ErrMsgPredictionNotFound = "prediction not found"
	ErrMsgNotRanked          = "no standing in this scope"

	// Prediction errors
	ErrMsgAlreadyPredicted  = "prediction already exists"
	ErrMsgMatchLocked       = "match is locked for predictions"
	ErrMsgMatchNotFinished  = "match result is not final"
	ErrMsgAlreadyCalculated = "prediction has already been scored"
	ErrMsgUnauthorized      = "caller does not own this prediction"

	// Points errors
	ErrMsgInsufficientPoints     = "insufficient points"
	ErrMsgInvalidReference       = "invalid transaction reference"
	ErrMsgInvalidTransactionType = "invalid transaction type"
	ErrMsgInvalidTransactionSign = "transaction amount has invalid sign"

	// Champion errors
	ErrMsgSeasonClosed    = "season is closed for champion predictions"
	ErrMsgTeamNotInSeason = "team is not part of this season"
	ErrMsgAlreadyResolved = "season champion already confirmed with a different team"

	// Leaderboard errors
	ErrMsgInvalidScope = "invalid leaderboard scope"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrNotFound is the parent of every *NotFound error below.
	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrMatchNotFound      = fmt.Errorf("match %w", ErrNotFound)
	ErrSeasonNotFound     = fmt.Errorf("season %w", ErrNotFound)
	ErrRoundNotFound      = fmt.Errorf("round %w", ErrNotFound)
	ErrPredictionNotFound = fmt.Errorf("prediction %w", ErrNotFound)

	// ErrNotRanked means the user exists but has no row on the leaderboard
	ErrNotRanked = fmt.Errorf("%s: %w", ErrMsgNotRanked, ErrNotFound)

	// Prediction errors
	ErrAlreadyPredicted  = errors.New(ErrMsgAlreadyPredicted)
	ErrMatchLocked       = errors.New(ErrMsgMatchLocked)
	ErrMatchNotFinished  = errors.New(ErrMsgMatchNotFinished)
	ErrAlreadyCalculated = errors.New(ErrMsgAlreadyCalculated)
	ErrUnauthorized      = errors.New(ErrMsgUnauthorized)

	// Points errors
	ErrInsufficientPoints     = errors.New(ErrMsgInsufficientPoints)
	ErrInvalidReference       = errors.New(ErrMsgInvalidReference)
	ErrInvalidTransactionType = errors.New(ErrMsgInvalidTransactionType)
	ErrInvalidTransactionSign = errors.New(ErrMsgInvalidTransactionSign)

	// Champion errors
	ErrSeasonClosed    = errors.New(ErrMsgSeasonClosed)
	ErrTeamNotInSeason = errors.New(ErrMsgTeamNotInSeason)
	ErrAlreadyResolved = errors.New(ErrMsgAlreadyResolved)

	// Leaderboard errors
	ErrInvalidScope = errors.New(ErrMsgInvalidScope)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
