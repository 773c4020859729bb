package domain

import "time"

// Prediction is a user's forecast of a single match scoreline
type Prediction struct {
	ID                  int64      `json:"id"`
	UserID              string     `json:"user_id"`
	MatchID             int64      `json:"match_id"`
	PredictedHomeScore  int        `json:"predicted_home_score"`
	PredictedAwayScore  int        `json:"predicted_away_score"`
	PredictedOutcome    Outcome    `json:"predicted_outcome"`
	PointsEarned        int64      `json:"points_earned"`
	IsCorrectScore      bool       `json:"is_correct_score"`
	IsCorrectDifference bool       `json:"is_correct_difference"`
	IsCorrectWinner     bool       `json:"is_correct_winner"`
	StreakMultiplier    float64    `json:"streak_multiplier"`
	CalculatedAt        *time.Time `json:"calculated_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// IsCalculated reports whether the prediction has been scored
func (p *Prediction) IsCalculated() bool {
	return p.CalculatedAt != nil
}

// PredictionScore is the scoring verdict persisted onto a prediction
type PredictionScore struct {
	PointsEarned        int64
	IsCorrectScore      bool
	IsCorrectDifference bool
	IsCorrectWinner     bool
	CalculatedAt        time.Time
}

// ScoredOutcome is one entry of a user's scored prediction history, used to
// replay streaks.
type ScoredOutcome struct {
	PredictionID int64
	PointsEarned int64
	CalculatedAt time.Time
}

// SubmitPredictionRequest is the body of a prediction submission
type SubmitPredictionRequest struct {
	MatchID   int64 `json:"match_id" validate:"required,gt=0"`
	HomeScore *int  `json:"home_score" validate:"required,min=0"`
	AwayScore *int  `json:"away_score" validate:"required,min=0"`
}

// UpdatePredictionRequest is the body of a prediction update
type UpdatePredictionRequest struct {
	HomeScore *int `json:"home_score" validate:"required,min=0"`
	AwayScore *int `json:"away_score" validate:"required,min=0"`
}

// ScoringFailure records one prediction (or champion prediction) that could
// not be processed in a batch.
type ScoringFailure struct {
	PredictionID int64  `json:"prediction_id"`
	UserID       string `json:"user_id"`
	Reason       string `json:"reason"`
}

// ScoringResult summarises a ScoreMatch run
type ScoringResult struct {
	MatchID       int64            `json:"match_id"`
	Scored        int              `json:"scored"`
	PointsAwarded int64            `json:"points_awarded"`
	TierCounts    map[string]int   `json:"tier_counts"`
	Failures      []ScoringFailure `json:"failures,omitempty"`
}
