package worker

import "time"

// Job names
const (
	JobNameAutoScore            = "auto_score"
	JobNameLeaderboardRecompute = "leaderboard_recompute"
)

// DefaultJobTimeout bounds a single scheduled run
const DefaultJobTimeout = 5 * time.Minute

// ============================================================================
// Log Messages - Scheduler
// ============================================================================

const (
	LogMsgSchedulerStarted     = "Scheduler started"
	LogMsgSchedulerStopping    = "Scheduler shutting down"
	LogMsgSchedulerStopped     = "Scheduler shutdown complete"
	LogMsgSchedulerStopTimeout = "Scheduler shutdown timeout"
	LogMsgJobScheduled         = "Job scheduled"
	LogMsgJobDisabled          = "Job disabled, interval is not positive"
	LogMsgWorkerJobFailed      = "Worker job failed"
)

// ============================================================================
// Log Messages - Jobs
// ============================================================================

const (
	LogMsgAutoScoreCompleted   = "Auto-scoring run completed"
	LogMsgRecomputeCompleted   = "Scheduled leaderboard recompute completed"
	LogMsgAutoScorePartialFail = "Auto-scoring left predictions unscored"
)

// Error format strings
const (
	ErrMsgCreateSchedulerFailed = "failed to create scheduler: %w"
	ErrMsgRegisterJobFailed     = "failed to register job %s: %w"
	ErrMsgShutdownFailed        = "failed to shut down scheduler: %w"
)
