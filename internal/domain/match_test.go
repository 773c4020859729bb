package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestOutcomeOf(t *testing.T) {
	assert.Equal(t, OutcomeHome, OutcomeOf(2, 1))
	assert.Equal(t, OutcomeAway, OutcomeOf(0, 3))
	assert.Equal(t, OutcomeDraw, OutcomeOf(1, 1))
}

func TestMatchIsLocked(t *testing.T) {
	lock := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)
	m := &Match{Status: MatchStatusScheduled, LockTime: lock}

	assert.False(t, m.IsLocked(lock.Add(-time.Second)))
	assert.True(t, m.IsLocked(lock), "lock time itself is locked")
	assert.True(t, m.IsLocked(lock.Add(time.Minute)))

	m.Status = MatchStatusPostponed
	assert.True(t, m.IsLocked(lock.Add(-time.Hour)), "non-scheduled matches are locked")
}

func TestMatchIsFinished(t *testing.T) {
	m := &Match{Status: MatchStatusFinished}
	assert.False(t, m.IsFinished(), "finished without scores is not final")

	m.HomeScore, m.AwayScore = intPtr(2), intPtr(1)
	assert.True(t, m.IsFinished())

	m.Status = MatchStatusLive
	assert.False(t, m.IsFinished())
}

func TestRoundIsCurrent(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	r := &Round{StartDate: start, EndDate: start.Add(7 * 24 * time.Hour)}

	assert.False(t, r.IsCurrent(start.Add(-time.Second)))
	assert.True(t, r.IsCurrent(start))
	assert.True(t, r.IsCurrent(start.Add(3*24*time.Hour)))
	assert.False(t, r.IsCurrent(start.Add(8*24*time.Hour)))
}

func TestScopeValidate(t *testing.T) {
	_, err := ParseScope("all_time", 0)
	assert.NoError(t, err)

	_, err = ParseScope("all_time", 4)
	assert.ErrorIs(t, err, ErrInvalidScope)

	s, err := ParseScope("season", 4)
	assert.NoError(t, err)
	assert.Equal(t, "season:4", s.String())

	_, err = ParseScope("round", 0)
	assert.ErrorIs(t, err, ErrInvalidScope)

	_, err = ParseScope("weekly", 1)
	assert.ErrorIs(t, err, ErrInvalidScope)
}

func TestNotFoundHierarchy(t *testing.T) {
	assert.ErrorIs(t, ErrMatchNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.Equal(t, ErrMsgUserNotFound, ErrUserNotFound.Error())
	assert.Equal(t, ErrMsgPredictionNotFound, ErrPredictionNotFound.Error())
}
