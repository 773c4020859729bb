package leaderboard

import (
	"sort"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// less orders two standings: total points desc, exact scores desc, then for
// champion boards the smaller wager first, then user id so the order is total.
func less(a, b *domain.LeaderboardEntry, champion bool) bool {
	if a.TotalPoints != b.TotalPoints {
		return a.TotalPoints > b.TotalPoints
	}
	if a.CorrectScores != b.CorrectScores {
		return a.CorrectScores > b.CorrectScores
	}
	if champion && a.PointsWagered != b.PointsWagered {
		return a.PointsWagered < b.PointsWagered
	}
	return a.UserID < b.UserID
}

// Rank sorts entries in place and assigns sequential 1-based ranks. Ties on
// every key are impossible because user ids are unique, so no two entries
// share a rank.
func Rank(entries []domain.LeaderboardEntry, champion bool, computedAt time.Time) {
	sort.Slice(entries, func(i, j int) bool {
		return less(&entries[i], &entries[j], champion)
	})
	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].ComputedAt = computedAt
	}
}
