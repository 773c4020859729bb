package ledger

// Error messages
const (
	ErrMsgBeginTxFailed           = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed          = "failed to commit transaction: %w"
	ErrMsgInsertTransactionFailed = "failed to insert point transaction: %w"
	ErrMsgUpdateBalanceFailed     = "failed to update cached balance: %w"
	ErrMsgSumFailed               = "failed to sum ledger: %w"
	ErrMsgListFailed              = "failed to list transactions: %w"
	ErrMsgGetUserFailed           = "failed to get user: %w"
	ErrMsgLoadOutcomesFailed      = "failed to load scored predictions: %w"
	ErrMsgRebuildFailed           = "failed to rebuild user %s: %w"
)

// Log messages
const (
	LogMsgTransactionPosted = "Point transaction posted"
	LogMsgBalanceDrift      = "Cached balance differed from ledger"
	LogMsgStreakDrift       = "Cached streak differed from history"
	LogMsgUserRebuilt       = "User read model rebuilt from ledger"
	LogMsgRebuildAllDone    = "Rebuilt all users from ledger"
)
