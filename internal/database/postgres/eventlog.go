package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// EventLogRepository implements repository.EventLog
type EventLogRepository struct {
	pool *pgxpool.Pool
}

var _ repository.EventLog = (*EventLogRepository)(nil)

// NewEventLogRepository creates a new EventLogRepository
func NewEventLogRepository(pool *pgxpool.Pool) *EventLogRepository {
	return &EventLogRepository{pool: pool}
}

// LogEvent stores an event in the database
func (r *EventLogRepository) LogEvent(ctx context.Context, eventType string, userID *string, payload, metadata map[string]interface{}) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}

	var metadataJSON []byte
	if metadata != nil {
		if metadataJSON, err = json.Marshal(metadata); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
		}
	}

	var uid interface{}
	if userID != nil {
		id, err := parseUserUUID(*userID)
		if err != nil {
			return err
		}
		uid = id
	}

	if _, err := r.pool.Exec(ctx, `
		INSERT INTO event_log (event_type, user_id, payload, metadata)
		VALUES ($1, $2, $3, $4)`,
		eventType, uid, payloadJSON, metadataJSON,
	); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLogEvent, err)
	}
	return nil
}

// ListEvents retrieves one page of events matching the filter
func (r *EventLogRepository) ListEvents(ctx context.Context, filter domain.EventLogFilter) ([]domain.EventLogEntry, int, error) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []interface{}{}
	argNum := 1

	if filter.UserID != nil {
		id, err := parseUserUUID(*filter.UserID)
		if err != nil {
			return nil, 0, err
		}
		fmt.Fprintf(&where, " AND user_id = $%d", argNum)
		args = append(args, id)
		argNum++
	}

	if filter.EventType != nil {
		fmt.Fprintf(&where, " AND event_type = $%d", argNum)
		args = append(args, *filter.EventType)
		argNum++
	}

	if filter.Since != nil {
		fmt.Fprintf(&where, " AND created_at >= $%d", argNum)
		args = append(args, *filter.Since)
		argNum++
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM event_log`+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListEvents, err)
	}

	page := filter.Page.Normalize()
	query := fmt.Sprintf(`
		SELECT event_log_id, event_type, user_id::text, payload, metadata, created_at
		FROM event_log%s
		ORDER BY created_at DESC, event_log_id DESC
		LIMIT $%d OFFSET $%d`, where.String(), argNum, argNum+1)
	args = append(args, page.Limit, page.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListEvents, err)
	}
	defer rows.Close()

	events, err := scanEvents(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", ErrMsgFailedToListEvents, err)
	}
	return events, total, nil
}

// DeleteEventsBefore removes events created before cutoff
func (r *EventLogRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM event_log WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCleanupEvents, err)
	}
	return tag.RowsAffected(), nil
}

func scanEvents(rows pgx.Rows) ([]domain.EventLogEntry, error) {
	var events []domain.EventLogEntry

	for rows.Next() {
		var evt domain.EventLogEntry
		var payloadJSON, metadataJSON []byte

		if err := rows.Scan(&evt.ID, &evt.EventType, &evt.UserID, &payloadJSON, &metadataJSON, &evt.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, err
		}
		if len(metadataJSON) > 0 {
			if err := json.Unmarshal(metadataJSON, &evt.Metadata); err != nil {
				return nil, err
			}
		}

		events = append(events, evt)
	}

	return events, rows.Err()
}
