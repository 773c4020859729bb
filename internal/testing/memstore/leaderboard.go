package memstore

import (
	"context"
	"slices"
	"sort"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// LeaderboardRepo adapts the store to repository.Leaderboard
type LeaderboardRepo struct{ *Store }

var _ repository.Leaderboard = LeaderboardRepo{}

func (r LeaderboardRepo) AggregateStandings(_ context.Context, scope domain.Scope, w domain.ScopeWindow) ([]domain.LeaderboardEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.st

	byUser := map[string]*domain.LeaderboardEntry{}
	entry := func(userID string) *domain.LeaderboardEntry {
		e, ok := byUser[userID]
		if !ok {
			e = &domain.LeaderboardEntry{UserID: userID, Username: st.users[userID].Username}
			byUser[userID] = e
		}
		return e
	}

	for _, pt := range st.transactions {
		if pt.Amount <= 0 {
			continue
		}
		if !st.creditInScope(pt, scope, w) {
			continue
		}
		entry(pt.UserID).TotalPoints += pt.Amount
	}

	for _, p := range st.predictions {
		if p.CalculatedAt == nil || !matchInScope(st.matches[p.MatchID], scope) {
			continue
		}
		e := entry(p.UserID)
		e.TotalPredictions++
		if p.IsCorrectScore {
			e.CorrectScores++
		}
		if p.IsCorrectDifference {
			e.CorrectDifferences++
		}
		if p.IsCorrectWinner {
			e.CorrectWinners++
		}
	}

	out := make([]domain.LeaderboardEntry, 0, len(byUser))
	for _, e := range byUser {
		out = append(out, *e)
	}
	return out, nil
}

func matchInScope(m domain.Match, scope domain.Scope) bool {
	switch scope.Kind {
	case domain.ScopeSeason:
		return m.SeasonID == scope.ID
	case domain.ScopeRound:
		return m.RoundID == scope.ID
	}
	return true
}

// creditInScope places prediction credits by their match and champion
// credits by their season; everything else falls back to the date window.
func (st *state) creditInScope(pt domain.PointTransaction, scope domain.Scope, w domain.ScopeWindow) bool {
	switch pt.Reference.Kind {
	case domain.RefPrediction:
		if p, ok := st.predictions[pt.Reference.ID]; ok {
			return matchInScope(st.matches[p.MatchID], scope)
		}
	case domain.RefChampionPrediction:
		if cp, ok := st.champions[pt.Reference.ID]; ok && scope.Kind == domain.ScopeSeason {
			return cp.SeasonID == scope.ID
		}
	}
	if w.From != nil && pt.CreatedAt.Before(*w.From) {
		return false
	}
	if w.To != nil && pt.CreatedAt.After(*w.To) {
		return false
	}
	return true
}

func (r LeaderboardRepo) AggregateChampionStandings(_ context.Context, seasonID int64) ([]domain.LeaderboardEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.LeaderboardEntry
	for _, cp := range r.st.champions {
		if cp.SeasonID != seasonID {
			continue
		}
		out = append(out, domain.LeaderboardEntry{
			UserID:        cp.UserID,
			Username:      r.st.users[cp.UserID].Username,
			TotalPoints:   cp.PointsEarned,
			PointsWagered: cp.PointsWagered,
		})
	}
	return out, nil
}

func (r LeaderboardRepo) ReplaceEntries(_ context.Context, scope domain.Scope, entries []domain.LeaderboardEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.st.leaderboards[scope] = slices.Clone(entries)
	return nil
}

func (r LeaderboardRepo) GetEntries(_ context.Context, scope domain.Scope, page domain.Page) ([]domain.LeaderboardEntry, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := slices.Clone(r.st.leaderboards[scope])
	sort.Slice(rows, func(i, j int) bool { return rows[i].Rank < rows[j].Rank })
	return window(rows, page), len(rows), nil
}

func (r LeaderboardRepo) GetUserEntry(_ context.Context, scope domain.Scope, userID string) (*domain.LeaderboardEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.st.leaderboards[scope] {
		if e.UserID == userID {
			return &e, nil
		}
	}
	return nil, domain.ErrNotRanked
}

func (r LeaderboardRepo) GetRound(_ context.Context, roundID int64) (*domain.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	round, ok := r.st.rounds[roundID]
	if !ok {
		return nil, domain.ErrRoundNotFound
	}
	return &round, nil
}

func (r LeaderboardRepo) ListSeasons(context.Context) ([]domain.Season, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Season, 0, len(r.st.seasons))
	for _, s := range r.st.seasons {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r LeaderboardRepo) ListRounds(context.Context) ([]domain.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Round, 0, len(r.st.rounds))
	for _, rd := range r.st.rounds {
		out = append(out, rd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
