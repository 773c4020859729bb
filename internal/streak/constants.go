package streak

// Error messages
const (
	ErrMsgLoadUserFailed     = "failed to load user for streak update: %w"
	ErrMsgUpdateStreakFailed = "failed to update streak: %w"
)

// Log messages
const (
	LogMsgStreakUpdated = "Streak updated"
)
