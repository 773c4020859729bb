package champion

// Error messages
const (
	ErrMsgBeginTxFailed     = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed    = "failed to commit transaction: %w"
	ErrMsgGetSeasonFailed   = "failed to get season: %w"
	ErrMsgGetUserFailed     = "failed to lock user: %w"
	ErrMsgLookupFailed      = "failed to look up champion prediction: %w"
	ErrMsgCreateFailed      = "failed to create champion prediction: %w"
	ErrMsgSumFailed         = "failed to read balance: %w"
	ErrMsgWagerFailed       = "failed to post wager: %w"
	ErrMsgConfirmFailed     = "failed to confirm season champion: %w"
	ErrMsgLoadPendingFailed = "failed to load pending champion predictions: %w"
	ErrMsgSettleFailed      = "failed to settle champion prediction: %w"
	ErrMsgPayoutFailed      = "failed to post payout: %w"
	ErrMsgSavepointFailed   = "failed to create savepoint: %w"
	ErrMsgListFailed        = "failed to list champion predictions: %w"
	ErrMsgGetChampionFailed = "failed to get season champion: %w"
)

// Ledger descriptions
const (
	WagerDescriptionFormat  = "Champion wager on team #%d (season #%d)"
	PayoutDescriptionFormat = "Champion payout for prediction #%d"
)

// Log messages
const (
	LogMsgChampionPredicted = "Champion prediction placed"
	LogMsgSeasonResolved    = "Season champion resolved"
	LogMsgSettleFailed      = "Failed to settle champion prediction"
	LogMsgResolutionResumed = "Season champion already confirmed, settling remaining predictions"
)
