package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

func userIDs(entries []domain.LeaderboardEntry) []string {
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.UserID
	}
	return ids
}

func TestRank_ExactScoresBreakPointTies(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{UserID: "a", TotalPoints: 100, CorrectScores: 3},
		{UserID: "b", TotalPoints: 100, CorrectScores: 5},
		{UserID: "c", TotalPoints: 80, CorrectScores: 10},
	}
	now := time.Now()

	Rank(entries, false, now)

	assert.Equal(t, []string{"b", "a", "c"}, userIDs(entries))
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 3, entries[2].Rank)
	assert.Equal(t, now, entries[0].ComputedAt)
}

func TestRank_FullTiesAreSequentialByUserID(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{UserID: "zed", TotalPoints: 50, CorrectScores: 1},
		{UserID: "amy", TotalPoints: 50, CorrectScores: 1},
		{UserID: "kim", TotalPoints: 50, CorrectScores: 1},
	}

	Rank(entries, false, time.Now())

	assert.Equal(t, []string{"amy", "kim", "zed"}, userIDs(entries))
	assert.Equal(t, []int{1, 2, 3}, []int{entries[0].Rank, entries[1].Rank, entries[2].Rank})
}

func TestRank_ChampionPrefersSmallerWager(t *testing.T) {
	entries := []domain.LeaderboardEntry{
		{UserID: "a", TotalPoints: 150, PointsWagered: 100},
		{UserID: "b", TotalPoints: 150, PointsWagered: 75},
		{UserID: "c", TotalPoints: 0, PointsWagered: 10},
	}

	Rank(entries, true, time.Now())
	assert.Equal(t, []string{"b", "a", "c"}, userIDs(entries))

	// Wager is not a tie-break outside champion boards
	Rank(entries, false, time.Now())
	assert.Equal(t, []string{"a", "b", "c"}, userIDs(entries))
}

func TestRank_Empty(t *testing.T) {
	var entries []domain.LeaderboardEntry
	assert.NotPanics(t, func() { Rank(entries, false, time.Now()) })
}
