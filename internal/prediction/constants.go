package prediction

// Error messages
const (
	ErrMsgGetMatchFailed      = "failed to get match: %w"
	ErrMsgGetUserFailed       = "failed to get user: %w"
	ErrMsgGetPredictionFailed = "failed to get prediction: %w"
	ErrMsgCreateFailed        = "failed to create prediction: %w"
	ErrMsgUpdateFailed        = "failed to update prediction: %w"
	ErrMsgListFailed          = "failed to list predictions: %w"
	ErrMsgNegativeScore       = "%w: scores must be non-negative (got %d-%d)"
)

// Log messages
const (
	LogMsgPredictionSubmitted = "Prediction submitted"
	LogMsgPredictionUpdated   = "Prediction updated"
	LogMsgSubmitRejected      = "Prediction rejected"
)
