package metrics

import (
	"context"
	"strings"

	"github.com/osse101/Scoreline_Go/internal/event"
	"github.com/osse101/Scoreline_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.PredictionSubmitted,
		event.PredictionUpdated,
		event.MatchScored,
		event.ChampionPredicted,
		event.SeasonChampionConfirmed,
		event.LeaderboardRecomputed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Decode failures are
// logged and swallowed so a malformed payload never fails the publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PredictionSubmitted:
		PredictionsSubmitted.Inc()

	case event.PredictionUpdated:
		PredictionsUpdated.Inc()

	case event.MatchScored:
		var p event.MatchScoredPayloadV1
		if p, err = event.DecodePayload[event.MatchScoredPayloadV1](evt.Payload); err == nil {
			if p.Scored > 0 {
				MatchesScored.Inc()
			}
			for tier, n := range p.TierCounts {
				PredictionsScored.WithLabelValues(tier).Add(float64(n))
			}
			ScoringFailures.WithLabelValues(SourceMatch).Add(float64(p.Failed))
			PointsAwarded.Add(float64(p.PointsAwarded))
		}

	case event.ChampionPredicted:
		var p event.ChampionPredictedPayloadV1
		if p, err = event.DecodePayload[event.ChampionPredictedPayloadV1](evt.Payload); err == nil {
			ChampionWagers.Add(float64(p.PointsWagered))
		}

	case event.SeasonChampionConfirmed:
		var p event.SeasonChampionConfirmedPayloadV1
		if p, err = event.DecodePayload[event.SeasonChampionConfirmedPayloadV1](evt.Payload); err == nil {
			ChampionPointsPaid.Add(float64(p.PointsPaid))
			ScoringFailures.WithLabelValues(SourceChampion).Add(float64(p.Failed))
		}

	case event.LeaderboardRecomputed:
		var p event.LeaderboardRecomputedPayloadV1
		if p, err = event.DecodePayload[event.LeaderboardRecomputedPayloadV1](evt.Payload); err == nil {
			LeaderboardRecomputeDuration.WithLabelValues(scopeKind(p.Scope)).Observe(p.Duration.Seconds())
		}
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// scopeKind drops the id from "season:3" so the label stays low-cardinality
func scopeKind(scope string) string {
	kind, _, _ := strings.Cut(scope, ":")
	return kind
}
