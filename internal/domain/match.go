package domain

import "time"

// MatchStatus is the lifecycle state reported by the match provider
type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "scheduled"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusFinished  MatchStatus = "finished"
	MatchStatusPostponed MatchStatus = "postponed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// Outcome is the winner side of a scoreline
type Outcome string

const (
	OutcomeHome Outcome = "home"
	OutcomeAway Outcome = "away"
	OutcomeDraw Outcome = "draw"
)

// OutcomeOf derives the winner side from a scoreline
func OutcomeOf(home, away int) Outcome {
	switch {
	case home > away:
		return OutcomeHome
	case away > home:
		return OutcomeAway
	default:
		return OutcomeDraw
	}
}

// Match is owned by the match provider; the core only reads it, apart from
// ScoredAt which scoring sets once every prediction is processed.
type Match struct {
	ID         int64       `json:"id"`
	SeasonID   int64       `json:"season_id"`
	RoundID    int64       `json:"round_id,omitempty"` // 0 when not assigned to a round
	HomeTeamID int64       `json:"home_team_id"`
	AwayTeamID int64       `json:"away_team_id"`
	HomeScore  *int        `json:"home_score,omitempty"`
	AwayScore  *int        `json:"away_score,omitempty"`
	Status     MatchStatus `json:"status"`
	LockTime   time.Time   `json:"lock_time"`
	KickoffAt  time.Time   `json:"kickoff_at"`
	ScoredAt   *time.Time  `json:"scored_at,omitempty"`
}

// IsFinished reports whether a final result is available
func (m *Match) IsFinished() bool {
	return m.Status == MatchStatusFinished && m.HomeScore != nil && m.AwayScore != nil
}

// IsLocked reports whether predictions can no longer be created or changed
func (m *Match) IsLocked(now time.Time) bool {
	return m.Status != MatchStatusScheduled || !now.Before(m.LockTime)
}

// IsScored reports whether every prediction for the match has been processed
func (m *Match) IsScored() bool {
	return m.ScoredAt != nil
}
