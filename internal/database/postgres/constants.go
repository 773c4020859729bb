package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a referenced row is missing
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCreateSavepoint  = "failed to create savepoint"
	ErrMsgInvalidUserID            = "invalid user id"
)

// Error Messages - Queries
const (
	ErrMsgFailedToGetUser            = "failed to get user"
	ErrMsgFailedToUpdateUser         = "failed to update user"
	ErrMsgFailedToInsertTransaction  = "failed to insert point transaction"
	ErrMsgFailedToSumTransactions    = "failed to sum point transactions"
	ErrMsgFailedToListTransactions   = "failed to list point transactions"
	ErrMsgFailedToGetMatch           = "failed to get match"
	ErrMsgFailedToGetPrediction      = "failed to get prediction"
	ErrMsgFailedToSavePrediction     = "failed to save prediction"
	ErrMsgFailedToListPredictions    = "failed to list predictions"
	ErrMsgFailedToGetSeason          = "failed to get season"
	ErrMsgFailedToGetRound           = "failed to get round"
	ErrMsgFailedToSaveChampion       = "failed to save champion prediction"
	ErrMsgFailedToListChampions      = "failed to list champion predictions"
	ErrMsgFailedToAggregate          = "failed to aggregate leaderboard"
	ErrMsgFailedToReplaceLeaderboard = "failed to replace leaderboard"
	ErrMsgFailedToReadLeaderboard    = "failed to read leaderboard"
	ErrMsgFailedToLogEvent           = "failed to log event"
	ErrMsgFailedToListEvents         = "failed to list events"
	ErrMsgFailedToCleanupEvents      = "failed to clean up events"
)
