package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Parameter error messages
	ErrMsgMissingQueryParam   = "Missing %s query parameter"
	ErrMsgInvalidPathParam    = "Invalid %s"
	ErrMsgInvalidScopeID      = "Invalid id query parameter"
	ErrMsgInvalidLimit        = "Invalid limit parameter"
	ErrMsgInvalidOffset       = "Invalid offset parameter"
	ErrMsgMissingUserHeader   = "Missing X-User-ID header"
	ErrMsgChampionNotResolved = "Season champion has not been confirmed"
	ErrMsgInvalidUserFilter   = "Invalid user_id query parameter"
	ErrMsgInvalidSince        = "Invalid since query parameter, expected RFC 3339"
)

// Success messages for API responses
const (
	MsgLeaderboardsRecomputed = "Leaderboards recomputed"
	MsgUserRebuilt            = "User rebuilt from ledger"
	MsgPointsAdjusted         = "Points adjusted"
	MsgPendingMatchesScored   = "Pending matches scored"
)

// Log messages
const (
	LogMsgServiceError   = "Service error"
	LogMsgDecodeFailed   = "Failed to decode %s request"
	LogMsgRequestDecoded = "%s request decoded"
	LogMsgReadinessFail  = "Readiness check failed"
)
