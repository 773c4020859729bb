package bootstrap

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered  = "Metrics collector registered"
	LogMsgLeaderboardHandlersAttached = "Leaderboard event handlers registered"
	ErrMsgFailedRegisterMetrics       = "failed to register metrics collector"
)

// Log messages for background jobs
const (
	LogMsgJobsScheduled = "Background jobs scheduled"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownScheduler      = "Shutting down job scheduler..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgSchedulerShutdownFailed    = "Job scheduler shutdown failed"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
