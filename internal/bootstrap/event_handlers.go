package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Scoreline_Go/internal/event"
	"github.com/osse101/Scoreline_Go/internal/eventlog"
	"github.com/osse101/Scoreline_Go/internal/leaderboard"
	"github.com/osse101/Scoreline_Go/internal/metrics"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus    event.Bus
	Leaderboard leaderboard.Service
	EventLog    eventlog.Service
}

// RegisterEventHandlers sets up all event subscribers:
// - leaderboard recompute after a match is scored or a champion confirmed
// - event audit log, when one is configured
// - metrics collector (for event-based metrics)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	deps.EventBus.Subscribe(event.MatchScored, deps.Leaderboard.HandleMatchScored)
	deps.EventBus.Subscribe(event.SeasonChampionConfirmed, deps.Leaderboard.HandleChampionResolved)
	slog.Info(LogMsgLeaderboardHandlersAttached)

	if deps.EventLog != nil {
		deps.EventLog.Subscribe(deps.EventBus)
	}

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
