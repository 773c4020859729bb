package event

import (
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// Event types published by the scoring core
const (
	PredictionSubmitted     Type = domain.EventTypePredictionSubmitted
	PredictionUpdated       Type = domain.EventTypePredictionUpdated
	MatchScored             Type = domain.EventTypeMatchScored
	ChampionPredicted       Type = domain.EventTypeChampionPredicted
	SeasonChampionConfirmed Type = domain.EventTypeSeasonChampionConfirmed
	LeaderboardRecomputed   Type = domain.EventTypeLeaderboardRecomputed
)

// PredictionPayloadV1 is the typed payload for prediction submitted/updated events
type PredictionPayloadV1 struct {
	PredictionID     int64   `json:"prediction_id"`
	UserID           string  `json:"user_id"`
	MatchID          int64   `json:"match_id"`
	StreakMultiplier float64 `json:"streak_multiplier"`
	Timestamp        int64   `json:"timestamp"`
}

// MatchScoredPayloadV1 is the typed payload for match scored events
type MatchScoredPayloadV1 struct {
	MatchID       int64          `json:"match_id"`
	SeasonID      int64          `json:"season_id"`
	RoundID       int64          `json:"round_id,omitempty"`
	Scored        int            `json:"scored"`
	Failed        int            `json:"failed"`
	PointsAwarded int64          `json:"points_awarded"`
	TierCounts    map[string]int `json:"tier_counts"`
	ScoredAt      time.Time      `json:"scored_at"`
}

// ChampionPredictedPayloadV1 is the typed payload for champion wager events
type ChampionPredictedPayloadV1 struct {
	ChampionPredictionID int64  `json:"champion_prediction_id"`
	UserID               string `json:"user_id"`
	SeasonID             int64  `json:"season_id"`
	TeamID               int64  `json:"team_id"`
	PointsWagered        int64  `json:"points_wagered"`
	ConfidenceLevel      int    `json:"confidence_level"`
}

// SeasonChampionConfirmedPayloadV1 is the typed payload for champion resolution events
type SeasonChampionConfirmedPayloadV1 struct {
	SeasonID       int64 `json:"season_id"`
	ChampionTeamID int64 `json:"champion_team_id"`
	Won            int   `json:"won"`
	Lost           int   `json:"lost"`
	Failed         int   `json:"failed"`
	PointsPaid     int64 `json:"points_paid"`
}

// LeaderboardRecomputedPayloadV1 is the typed payload for leaderboard recompute events
type LeaderboardRecomputedPayloadV1 struct {
	Scope    string        `json:"scope"`
	Entries  int           `json:"entries"`
	Duration time.Duration `json:"duration"`
}

// NewPredictionEvent creates a prediction submitted or updated event
func NewPredictionEvent(eventType Type, p *domain.Prediction) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: PredictionPayloadV1{
			PredictionID:     p.ID,
			UserID:           p.UserID,
			MatchID:          p.MatchID,
			StreakMultiplier: p.StreakMultiplier,
			Timestamp:        time.Now().Unix(),
		},
	}
}

// NewMatchScoredEvent creates a match scored event
func NewMatchScoredEvent(m *domain.Match, result *domain.ScoringResult, scoredAt time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MatchScored,
		Payload: MatchScoredPayloadV1{
			MatchID:       m.ID,
			SeasonID:      m.SeasonID,
			RoundID:       m.RoundID,
			Scored:        result.Scored,
			Failed:        len(result.Failures),
			PointsAwarded: result.PointsAwarded,
			TierCounts:    result.TierCounts,
			ScoredAt:      scoredAt,
		},
	}
}

// NewChampionPredictedEvent creates a champion wager event
func NewChampionPredictedEvent(cp *domain.ChampionPrediction) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ChampionPredicted,
		Payload: ChampionPredictedPayloadV1{
			ChampionPredictionID: cp.ID,
			UserID:               cp.UserID,
			SeasonID:             cp.SeasonID,
			TeamID:               cp.PredictedTeamID,
			PointsWagered:        cp.PointsWagered,
			ConfidenceLevel:      cp.ConfidenceLevel,
		},
	}
}

// NewSeasonChampionConfirmedEvent creates a champion resolution event
func NewSeasonChampionConfirmedEvent(r *domain.ChampionResolution) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SeasonChampionConfirmed,
		Payload: SeasonChampionConfirmedPayloadV1{
			SeasonID:       r.SeasonID,
			ChampionTeamID: r.ChampionTeamID,
			Won:            r.Won,
			Lost:           r.Lost,
			Failed:         len(r.Failures),
			PointsPaid:     r.PointsPaid,
		},
	}
}

// NewLeaderboardRecomputedEvent creates a leaderboard recompute event
func NewLeaderboardRecomputedEvent(scope domain.Scope, entries int, took time.Duration) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LeaderboardRecomputed,
		Payload: LeaderboardRecomputedPayloadV1{
			Scope:    scope.String(),
			Entries:  entries,
			Duration: took,
		},
	}
}
