package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// PredictionRepo adapts the store to repository.Prediction
type PredictionRepo struct{ *Store }

var _ repository.Prediction = PredictionRepo{}

func (s *Store) GetMatch(_ context.Context, matchID int64) (*domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.st.matches[matchID]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return &m, nil
}

func (s *Store) GetPrediction(_ context.Context, predictionID int64) (*domain.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.predictions[predictionID]
	if !ok {
		return nil, domain.ErrPredictionNotFound
	}
	return &p, nil
}

func (s *Store) GetPredictionByUserMatch(_ context.Context, userID string, matchID int64) (*domain.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.st.predictions {
		if p.UserID == userID && p.MatchID == matchID {
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Store) CreatePrediction(_ context.Context, p *domain.Prediction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.st.predictions {
		if existing.UserID == p.UserID && existing.MatchID == p.MatchID {
			return domain.ErrAlreadyPredicted
		}
	}
	now := s.Now()
	p.ID = s.st.id()
	p.CreatedAt, p.UpdatedAt = now, now
	s.st.predictions[p.ID] = *p
	return nil
}

func (s *Store) UpdatePredictionScores(_ context.Context, predictionID int64, home, away int, outcome domain.Outcome, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.st.predictions[predictionID]
	if !ok {
		return domain.ErrPredictionNotFound
	}
	if p.CalculatedAt != nil {
		return domain.ErrAlreadyCalculated
	}
	p.PredictedHomeScore, p.PredictedAwayScore, p.PredictedOutcome = home, away, outcome
	p.UpdatedAt = updatedAt
	s.st.predictions[predictionID] = p
	return nil
}

func (s *Store) ListUserPredictions(_ context.Context, userID string, page domain.Page) ([]domain.Prediction, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []domain.Prediction
	for _, p := range s.st.predictions {
		if p.UserID == userID {
			rows = append(rows, p)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	return window(rows, page), len(rows), nil
}
