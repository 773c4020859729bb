package repository

import (
	"context"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// Leaderboard defines the interface for leaderboard aggregation and storage
type Leaderboard interface {
	// AggregateStandings returns one unranked entry per user with activity in
	// the scope: positive ledger amounts inside window plus scored prediction
	// counters for matches in the scope.
	AggregateStandings(ctx context.Context, scope domain.Scope, window domain.ScopeWindow) ([]domain.LeaderboardEntry, error)
	// AggregateChampionStandings returns one unranked entry per champion
	// prediction of the season.
	AggregateChampionStandings(ctx context.Context, seasonID int64) ([]domain.LeaderboardEntry, error)
	// ReplaceEntries atomically swaps the persisted rows of a scope
	ReplaceEntries(ctx context.Context, scope domain.Scope, entries []domain.LeaderboardEntry) error
	GetEntries(ctx context.Context, scope domain.Scope, page domain.Page) ([]domain.LeaderboardEntry, int, error)
	// GetUserEntry returns domain.ErrNotRanked when the user is not ranked in the scope
	GetUserEntry(ctx context.Context, scope domain.Scope, userID string) (*domain.LeaderboardEntry, error)

	GetSeason(ctx context.Context, seasonID int64) (*domain.Season, error)
	GetRound(ctx context.Context, roundID int64) (*domain.Round, error)
	ListSeasons(ctx context.Context) ([]domain.Season, error)
	ListRounds(ctx context.Context) ([]domain.Round, error)
}
