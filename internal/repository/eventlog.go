package repository

import (
	"context"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// EventLog defines the interface for event audit log storage
type EventLog interface {
	// LogEvent stores an event in the database
	LogEvent(ctx context.Context, eventType string, userID *string, payload, metadata map[string]interface{}) error

	// ListEvents returns one page of matching events, newest first, plus the total match count
	ListEvents(ctx context.Context, filter domain.EventLogFilter) ([]domain.EventLogEntry, int, error)

	// DeleteEventsBefore removes events created before cutoff
	DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
