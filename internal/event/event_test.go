package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got MatchScoredPayloadV1

	bus.Subscribe(MatchScored, func(ctx context.Context, evt Event) error {
		payload, err := DecodePayload[MatchScoredPayloadV1](evt.Payload)
		got = payload
		return err
	})

	m := &domain.Match{ID: 9, SeasonID: 2, RoundID: 5}
	result := &domain.ScoringResult{MatchID: 9, Scored: 4, PointsAwarded: 95}
	require.NoError(t, bus.Publish(context.Background(), NewMatchScoredEvent(m, result, time.Now())))

	assert.Equal(t, int64(9), got.MatchID)
	assert.Equal(t, int64(2), got.SeasonID)
	assert.Equal(t, int64(5), got.RoundID)
	assert.Equal(t, int64(95), got.PointsAwarded)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: LeaderboardRecomputed}))
}

func TestMemoryBus_HandlerErrorsAreCollected(t *testing.T) {
	bus := NewMemoryBus()
	calls := 0

	bus.Subscribe(SeasonChampionConfirmed, func(context.Context, Event) error {
		calls++
		return errors.New("first failed")
	})
	bus.Subscribe(SeasonChampionConfirmed, func(context.Context, Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewSeasonChampionConfirmedEvent(&domain.ChampionResolution{SeasonID: 1}))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "encountered 1 errors")
	assert.Equal(t, 2, calls, "later handlers still run")
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"season_id": float64(3), "champion_team_id": float64(11), "won": float64(2)}

	payload, err := DecodePayload[SeasonChampionConfirmedPayloadV1](raw)

	require.NoError(t, err)
	assert.Equal(t, int64(3), payload.SeasonID)
	assert.Equal(t, int64(11), payload.ChampionTeamID)
	assert.Equal(t, 2, payload.Won)
}

func TestGetMetadataValue(t *testing.T) {
	evt := Event{Metadata: Metadata{"source": "scheduler"}}
	assert.Equal(t, "scheduler", evt.GetMetadataValue("source"))
	assert.Nil(t, evt.GetMetadataValue("missing"))
	assert.Nil(t, Event{}.GetMetadataValue("source"))
}
