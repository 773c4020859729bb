package scoring

// DefaultPendingBatchSize caps matches handled per ScorePendingMatches run
const DefaultPendingBatchSize = 50

// Error messages
const (
	ErrMsgBeginTxFailed         = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed        = "failed to commit scoring transaction: %w"
	ErrMsgLockMatchFailed       = "failed to lock match: %w"
	ErrMsgLoadPredictionsFailed = "failed to load unscored predictions: %w"
	ErrMsgSavepointFailed       = "failed to open savepoint: %w"
	ErrMsgSaveScoreFailed       = "failed to save prediction score: %w"
	ErrMsgLedgerPostFailed      = "failed to post prediction win: %w"
	ErrMsgStreakFailed          = "failed to update streak: %w"
	ErrMsgMarkScoredFailed      = "failed to mark match scored: %w"
	ErrMsgListPendingFailed     = "failed to list finished matches: %w"
)

// Log messages
const (
	LogMsgScoringStarted        = "Scoring match"
	LogMsgMatchAlreadyScored    = "Match already scored, nothing to do"
	LogMsgPredictionScored      = "Prediction scored"
	LogMsgPredictionScoreFailed = "Prediction could not be scored, continuing batch"
	LogMsgScoringCompleted      = "Match scoring completed"
	LogMsgPendingMatchFailed    = "Pending match scoring failed"
	LogMsgPendingScored         = "Scored pending matches"
)

// prediction_win description
const PredictionWinDescriptionFormat = "Prediction #%d (%s)"
