package eventlog

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/event"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

type MockRepository struct {
	mock.Mock
}

var _ repository.EventLog = (*MockRepository)(nil)

func (m *MockRepository) LogEvent(ctx context.Context, eventType string, userID *string, payload, metadata map[string]interface{}) error {
	args := m.Called(ctx, eventType, userID, payload, metadata)
	return args.Error(0)
}

func (m *MockRepository) ListEvents(ctx context.Context, filter domain.EventLogFilter) ([]domain.EventLogEntry, int, error) {
	args := m.Called(ctx, filter)
	var events []domain.EventLogEntry
	if v := args.Get(0); v != nil {
		events = v.([]domain.EventLogEntry)
	}
	return events, args.Int(1), args.Error(2)
}

func (m *MockRepository) DeleteEventsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockEventBus struct {
	mock.Mock
}

var _ event.Bus = (*MockEventBus)(nil)

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
