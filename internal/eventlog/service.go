// Package eventlog keeps an audit trail of the domain events published on
// the bus, queryable by operators and trimmed by a retention job.
package eventlog

import (
	"context"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/event"
	"github.com/osse101/Scoreline_Go/internal/logger"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// LoggedEventTypes are the event types recorded in the audit log
var LoggedEventTypes = []event.Type{
	event.PredictionSubmitted,
	event.PredictionUpdated,
	event.MatchScored,
	event.ChampionPredicted,
	event.SeasonChampionConfirmed,
	event.LeaderboardRecomputed,
}

// Service handles event logging business logic
type Service interface {
	// Subscribe registers the event logger on every logged event type
	Subscribe(bus event.Bus)

	// List returns one page of logged events, newest first, plus the total
	List(ctx context.Context, filter domain.EventLogFilter) ([]domain.EventLogEntry, int, error)

	// CleanupOldEvents removes events older than retention
	CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

type service struct {
	repo repository.EventLog
	now  func() time.Time
}

// NewService creates a new event logging service
func NewService(repo repository.EventLog) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Subscribe(bus event.Bus) {
	for _, eventType := range LoggedEventTypes {
		bus.Subscribe(eventType, s.handleEvent)
	}
	logger.FromContext(context.Background()).Info(LogMsgSubscribed, "types", len(LoggedEventTypes))
}

// handleEvent flattens the payload to a JSON object and stores it. Events
// whose payload is not an object are skipped rather than failing the publish.
func (s *service) handleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[map[string]interface{}](evt.Payload)
	if err != nil || payload == nil {
		log.Debug(LogMsgPayloadNotDecodable, "type", evt.Type, "error", err)
		return nil
	}

	var userID *string
	if uid, ok := payload[PayloadKeyUserID].(string); ok && uid != "" {
		userID = &uid
	}

	if err := s.repo.LogEvent(ctx, string(evt.Type), userID, payload, evt.Metadata); err != nil {
		log.Error(LogMsgFailedToLogEvent, "error", err, "type", evt.Type)
		return err
	}

	log.Debug(LogMsgEventLogged, "type", evt.Type, "user_id", userID)
	return nil
}

func (s *service) List(ctx context.Context, filter domain.EventLogFilter) ([]domain.EventLogEntry, int, error) {
	filter.Page = filter.Page.Normalize()
	return s.repo.ListEvents(ctx, filter)
}

func (s *service) CleanupOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return s.repo.DeleteEventsBefore(ctx, s.now().Add(-retention))
}
