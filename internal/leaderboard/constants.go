package leaderboard

import "time"

// Cache defaults
const (
	DefaultCacheSize = 256
	DefaultCacheTTL  = 30 * time.Second
)

// Error messages
const (
	ErrMsgAggregateFailed  = "failed to aggregate standings for %s: %w"
	ErrMsgReplaceFailed    = "failed to store leaderboard %s: %w"
	ErrMsgGetEntriesFailed = "failed to read leaderboard %s: %w"
	ErrMsgGetSeasonFailed  = "failed to get season: %w"
	ErrMsgGetRoundFailed   = "failed to get round: %w"
	ErrMsgListScopesFailed = "failed to list active scopes: %w"
	ErrMsgDecodePayload    = "failed to decode %s payload: %w"
)

// Log messages
const (
	LogMsgRecomputed          = "Leaderboard recomputed"
	LogMsgRecomputeFailed     = "Leaderboard recompute failed"
	LogMsgActiveRecomputeDone = "Active leaderboards recomputed"
	LogMsgRoundOverride       = "Using configured current round"
)
