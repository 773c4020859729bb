package memstore

import (
	"slices"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// AddUser inserts a user with zeroed cached fields
func (s *Store) AddUser(id, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[id] = domain.User{ID: id, Username: username, CreatedAt: s.Now()}
}

// SetUserStreak overwrites the cached streak counters
func (s *Store) SetUserStreak(id string, current, max int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.st.users[id]
	u.CurrentStreak, u.MaxStreak = current, max
	s.st.users[id] = u
}

// SetUserBalance overwrites the cached balance without touching the ledger
func (s *Store) SetUserBalance(id string, balance int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.st.users[id]
	u.PointsBalance = balance
	s.st.users[id] = u
}

// DeleteUser removes a user row, leaving any predictions orphaned
func (s *Store) DeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.st.users, id)
}

// AddSeason inserts a season
func (s *Store) AddSeason(season domain.Season) {
	s.mu.Lock()
	defer s.mu.Unlock()
	season.TeamIDs = slices.Clone(season.TeamIDs)
	s.st.seasons[season.ID] = season
}

// AddRound inserts a round
func (s *Store) AddRound(round domain.Round) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.rounds[round.ID] = round
}

// AddMatch inserts a match
func (s *Store) AddMatch(m domain.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.matches[m.ID] = m
}

// FinishMatch records a final result
func (s *Store) FinishMatch(matchID int64, home, away int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.st.matches[matchID]
	m.HomeScore, m.AwayScore = &home, &away
	m.Status = domain.MatchStatusFinished
	s.st.matches[matchID] = m
}

// User returns a copy of the user row
func (s *Store) User(id string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.st.users[id]
	return u, ok
}

// Match returns a copy of the match row
func (s *Store) Match(id int64) domain.Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.matches[id]
}

// Prediction returns a copy of the prediction row
func (s *Store) Prediction(id int64) domain.Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.predictions[id]
}

// ChampionPrediction returns a copy of the champion prediction row
func (s *Store) ChampionPrediction(id int64) domain.ChampionPrediction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.champions[id]
}

// Transactions returns the user's ledger rows in insertion order
func (s *Store) Transactions(userID string) []domain.PointTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.PointTransaction
	for _, pt := range s.st.transactions {
		if pt.UserID == userID {
			out = append(out, pt)
		}
	}
	return out
}

// LedgerSum is SUM(amount) for the user
func (s *Store) LedgerSum(userID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.sum(userID)
}

func (st *state) sum(userID string) int64 {
	var total int64
	for _, pt := range st.transactions {
		if pt.UserID == userID {
			total += pt.Amount
		}
	}
	return total
}
