package eventlog

import "time"

// JobNameCleanup identifies the retention job in scheduler logs
const JobNameCleanup = "event_log_cleanup"

// DefaultRetention applies when the configured retention is not positive
const DefaultRetention = 90 * 24 * time.Hour

// JSON payload field keys
const (
	PayloadKeyUserID = "user_id"
)

// Log messages - service events
const (
	LogMsgPayloadNotDecodable = "Event payload could not be decoded, skipping log"
	LogMsgFailedToLogEvent    = "Failed to log event to database"
	LogMsgEventLogged         = "Event logged to database"
	LogMsgSubscribed          = "Event log subscribed"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)
