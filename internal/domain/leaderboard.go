package domain

import (
	"fmt"
	"time"
)

// ScopeKind selects which leaderboard an entry belongs to
type ScopeKind string

const (
	ScopeAllTime  ScopeKind = "all_time"
	ScopeSeason   ScopeKind = "season"
	ScopeRound    ScopeKind = "round"
	ScopeChampion ScopeKind = "champion"
)

// Scope identifies one leaderboard. ID is 0 for all-time, a season id for
// season and champion scopes, and a round id for round scopes.
type Scope struct {
	Kind ScopeKind `json:"kind"`
	ID   int64     `json:"id"`
}

func AllTimeScope() Scope              { return Scope{Kind: ScopeAllTime} }
func SeasonScope(seasonID int64) Scope { return Scope{Kind: ScopeSeason, ID: seasonID} }
func RoundScope(roundID int64) Scope   { return Scope{Kind: ScopeRound, ID: roundID} }
func ChampionScope(seasonID int64) Scope {
	return Scope{Kind: ScopeChampion, ID: seasonID}
}

// ParseScope builds and validates a scope from its wire form
func ParseScope(kind string, id int64) (Scope, error) {
	s := Scope{Kind: ScopeKind(kind), ID: id}
	if err := s.Validate(); err != nil {
		return Scope{}, err
	}
	return s, nil
}

// Validate checks the kind/id combination
func (s Scope) Validate() error {
	switch s.Kind {
	case ScopeAllTime:
		if s.ID != 0 {
			return fmt.Errorf("%w: all_time scope takes no id", ErrInvalidScope)
		}
	case ScopeSeason, ScopeRound, ScopeChampion:
		if s.ID <= 0 {
			return fmt.Errorf("%w: %s scope requires an id", ErrInvalidScope, s.Kind)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidScope, s.Kind)
	}
	return nil
}

// IsChampion reports whether the scope ranks champion predictions
func (s Scope) IsChampion() bool {
	return s.Kind == ScopeChampion
}

func (s Scope) String() string {
	if s.Kind == ScopeAllTime {
		return string(s.Kind)
	}
	return fmt.Sprintf("%s:%d", s.Kind, s.ID)
}

// LeaderboardEntry is one ranked row of a leaderboard
type LeaderboardEntry struct {
	UserID             string    `json:"user_id"`
	Username           string    `json:"username"`
	TotalPoints        int64     `json:"total_points"`
	TotalPredictions   int       `json:"total_predictions"`
	CorrectScores      int       `json:"correct_scores"`
	CorrectDifferences int       `json:"correct_differences"`
	CorrectWinners     int       `json:"correct_winners"`
	PointsWagered      int64     `json:"points_wagered"`
	Rank               int       `json:"rank"`
	ComputedAt         time.Time `json:"computed_at"`
}

// LeaderboardPage is a window over a persisted leaderboard
type LeaderboardPage struct {
	Scope   Scope              `json:"scope"`
	Entries []LeaderboardEntry `json:"entries"`
	Total   int                `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
}

// ScopeWindow bounds the ledger rows that count toward a scope.
// A nil bound is open.
type ScopeWindow struct {
	From *time.Time
	To   *time.Time
}
