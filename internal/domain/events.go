package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "match.scored")
const (
	// EventTypePredictionSubmitted is published when a user records a match prediction
	EventTypePredictionSubmitted = "prediction.submitted"

	// EventTypePredictionUpdated is published when an open prediction is changed
	EventTypePredictionUpdated = "prediction.updated"

	// EventTypeMatchScored is published after a match's predictions are committed
	EventTypeMatchScored = "match.scored"

	// EventTypeChampionPredicted is published when a champion wager is placed
	EventTypeChampionPredicted = "champion.predicted"

	// EventTypeSeasonChampionConfirmed is published after champion predictions are settled
	EventTypeSeasonChampionConfirmed = "season.champion_confirmed"

	// EventTypeLeaderboardRecomputed is published after a scope is rebuilt
	EventTypeLeaderboardRecomputed = "leaderboard.recomputed"
)
