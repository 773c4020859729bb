package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Scoreline_Go/internal/testing/leaktest"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu           sync.Mutex
	calls        []Event
	failCount    int32
	shouldFail   func(attempt int) bool
	publishDelay time.Duration
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.publishDelay > 0 {
		time.Sleep(m.publishDelay)
	}

	if m.shouldFail != nil && m.shouldFail(callCount) {
		atomic.AddInt32(&m.failCount, 1)
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func matchScoredEvent(matchID int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MatchScored,
		Payload: MatchScoredPayloadV1{MatchID: matchID, Scored: 4},
	}
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{}

	rp, err := NewResilientPublisher(bus, 3, 100*time.Millisecond, tmpFile)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), matchScoredEvent(1))

	assert.Equal(t, 1, bus.CallCount(), "first attempt is synchronous")
	content, _ := os.ReadFile(tmpFile)
	assert.Empty(t, content, "No dead-letter entries expected")
}

func TestResilientPublisher_RetrySuccess(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{
		shouldFail: func(attempt int) bool { return attempt == 1 },
	}

	rp, err := NewResilientPublisher(bus, 3, 100*time.Millisecond, tmpFile)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), matchScoredEvent(2))

	assert.Eventually(t, func() bool { return bus.CallCount() == 2 }, time.Second, 10*time.Millisecond)
	content, _ := os.ReadFile(tmpFile)
	assert.Empty(t, content, "No dead-letter entries for successful retry")
}

func TestResilientPublisher_RetryExhaustion(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{
		shouldFail: func(int) bool { return true },
	}

	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, tmpFile)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), matchScoredEvent(3))

	// initial + 3 retries after 50ms, 100ms, 200ms
	require.Eventually(t, func() bool {
		content, _ := os.ReadFile(tmpFile)
		return len(content) > 0
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, 4, bus.CallCount())

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)

	var entry struct {
		SchemaVersion string `json:"schema_version"`
		Event         struct {
			Type    string                 `json:"type"`
			Payload map[string]interface{} `json:"payload"`
		} `json:"event"`
		Attempts  int    `json:"attempts"`
		LastError string `json:"last_error"`
	}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(content))), &entry))

	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, string(MatchScored), entry.Event.Type)
	assert.Equal(t, float64(3), entry.Event.Payload["match_id"])
	assert.Equal(t, 3, entry.Attempts)
	assert.Equal(t, "mock publish error", entry.LastError)
}

func TestResilientPublisher_QueueOverflow(t *testing.T) {
	tmpFile := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{
		shouldFail:   func(int) bool { return true },
		publishDelay: 10 * time.Millisecond,
	}

	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Second,
		shutdown:   make(chan struct{}),
	}
	dl, err := NewDeadLetterWriter(tmpFile)
	require.NoError(t, err)
	rp.deadLetter = dl

	rp.wg.Add(1)
	go rp.retryWorker()
	defer rp.Shutdown(context.Background())

	for i := 0; i < 6; i++ {
		rp.PublishWithRetry(context.Background(), matchScoredEvent(int64(i)))
	}

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	assert.NotEmpty(t, content, "Dead-letter should have overflow entries")
}

func TestResilientPublisher_GracefulShutdown(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)
	tmpFile := t.TempDir() + "/deadletter.jsonl"

	var calls int32
	bus := &mockBus{
		shouldFail: func(int) bool { return atomic.AddInt32(&calls, 1) <= 2 },
	}

	rp, err := NewResilientPublisher(bus, 5, 50*time.Millisecond, tmpFile)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rp.PublishWithRetry(context.Background(), matchScoredEvent(int64(i)))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, rp.Shutdown(ctx))
	assert.GreaterOrEqual(t, bus.CallCount(), 5, "queued events get a final attempt during shutdown")
	assert.NoError(t, rp.Shutdown(ctx), "second shutdown is a no-op")

	checker.Check(1)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
}
