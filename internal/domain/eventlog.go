package domain

import "time"

// EventLogEntry is one published domain event as stored in the audit log
type EventLogEntry struct {
	ID        int64                  `json:"id"`
	EventType string                 `json:"event_type"`
	UserID    *string                `json:"user_id,omitempty"`
	Payload   map[string]interface{} `json:"payload"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// EventLogFilter narrows an audit log query. Nil fields don't filter.
type EventLogFilter struct {
	UserID    *string
	EventType *string
	Since     *time.Time
	Page      Page
}
