package domain

import "time"

// Champion prediction limits
const (
	MinConfidenceLevel = 1
	MaxConfidenceLevel = 100
	MinChampionWager   = 1
)

// ChampionStatus is the settlement state of a champion prediction
type ChampionStatus string

const (
	ChampionStatusPending ChampionStatus = "pending"
	ChampionStatusWon     ChampionStatus = "won"
	ChampionStatusLost    ChampionStatus = "lost"
)

// ChampionPrediction is a season-long wager on the eventual champion
type ChampionPrediction struct {
	ID              int64          `json:"id"`
	UserID          string         `json:"user_id"`
	SeasonID        int64          `json:"season_id"`
	PredictedTeamID int64          `json:"predicted_team_id"`
	ConfidenceLevel int            `json:"confidence_level"`
	PointsWagered   int64          `json:"points_wagered"`
	PointsEarned    int64          `json:"points_earned"`
	Status          ChampionStatus `json:"status"`
	CalculatedAt    *time.Time     `json:"calculated_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// SeasonChampion is the confirmed winner of a season
type SeasonChampion struct {
	SeasonID       int64     `json:"season_id"`
	ChampionTeamID int64     `json:"champion_team_id"`
	ConfirmedAt    time.Time `json:"confirmed_at"`
}

// ChampionResolution summarises a ResolveSeason run
type ChampionResolution struct {
	SeasonID       int64            `json:"season_id"`
	ChampionTeamID int64            `json:"champion_team_id"`
	Won            int              `json:"won"`
	Lost           int              `json:"lost"`
	PointsPaid     int64            `json:"points_paid"`
	Failures       []ScoringFailure `json:"failures,omitempty"`
}

// ChampionPredictionRequest is the body of a champion prediction
type ChampionPredictionRequest struct {
	SeasonID        int64 `json:"season_id" validate:"required,gt=0"`
	TeamID          int64 `json:"team_id" validate:"required,gt=0"`
	ConfidenceLevel int   `json:"confidence_level" validate:"required,min=1,max=100"`
	PointsWagered   int64 `json:"points_wagered" validate:"required,min=1"`
}

// ResolveSeasonRequest is the body of an admin champion confirmation
type ResolveSeasonRequest struct {
	ChampionTeamID int64 `json:"champion_team_id" validate:"required,gt=0"`
}
