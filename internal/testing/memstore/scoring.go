package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// ScoringRepo adapts the store to repository.Scoring
type ScoringRepo struct{ *Store }

var _ repository.Scoring = ScoringRepo{}

type scoringTx struct{ *Tx }

func (r ScoringRepo) BeginTx(context.Context) (repository.ScoringTx, error) {
	return scoringTx{r.begin()}, nil
}

func (r ScoringRepo) ListFinishedUnscoredMatches(_ context.Context, limit int) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []int64
	for id, m := range r.st.matches {
		if m.IsFinished() && m.ScoredAt == nil {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (t scoringTx) Savepoint(context.Context) (repository.ScoringTx, error) {
	if t.closed {
		return nil, errTxClosed
	}
	return scoringTx{t.savepoint()}, nil
}

func (t *Tx) GetMatchForUpdate(_ context.Context, matchID int64) (*domain.Match, error) {
	m, ok := t.store.st.matches[matchID]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	return &m, nil
}

func (t *Tx) ListUnscoredPredictionsForUpdate(_ context.Context, matchID int64) ([]domain.Prediction, error) {
	var rows []domain.Prediction
	for _, p := range t.store.st.predictions {
		if p.MatchID == matchID && p.CalculatedAt == nil {
			rows = append(rows, p)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (t *Tx) SavePredictionScore(_ context.Context, predictionID int64, score domain.PredictionScore) error {
	p, ok := t.store.st.predictions[predictionID]
	if !ok {
		return domain.ErrPredictionNotFound
	}
	if p.CalculatedAt != nil {
		return domain.ErrAlreadyCalculated
	}
	at := score.CalculatedAt
	p.PointsEarned = score.PointsEarned
	p.IsCorrectScore = score.IsCorrectScore
	p.IsCorrectDifference = score.IsCorrectDifference
	p.IsCorrectWinner = score.IsCorrectWinner
	p.CalculatedAt = &at
	t.store.st.predictions[predictionID] = p
	return nil
}

func (t *Tx) MarkMatchScored(_ context.Context, matchID int64, scoredAt time.Time) error {
	m, ok := t.store.st.matches[matchID]
	if !ok {
		return domain.ErrMatchNotFound
	}
	m.ScoredAt = &scoredAt
	t.store.st.matches[matchID] = m
	return nil
}
