package memstore

import (
	"context"
	"sort"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// ChampionRepo adapts the store to repository.Champion
type ChampionRepo struct{ *Store }

var _ repository.Champion = ChampionRepo{}

type championTx struct{ *Tx }

func (r ChampionRepo) BeginTx(context.Context) (repository.ChampionTx, error) {
	return championTx{r.begin()}, nil
}

func (s *Store) GetSeason(_ context.Context, seasonID int64) (*domain.Season, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.season(seasonID)
}

func (st *state) season(seasonID int64) (*domain.Season, error) {
	season, ok := st.seasons[seasonID]
	if !ok {
		return nil, domain.ErrSeasonNotFound
	}
	return &season, nil
}

func (s *Store) GetSeasonChampion(_ context.Context, seasonID int64) (*domain.SeasonChampion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.st.confirmed[seasonID]
	if !ok {
		return nil, nil
	}
	return &sc, nil
}

func (s *Store) ListUserChampionPredictions(_ context.Context, userID string) ([]domain.ChampionPrediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var rows []domain.ChampionPrediction
	for _, cp := range s.st.champions {
		if cp.UserID == userID {
			rows = append(rows, cp)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID > rows[j].ID })
	return rows, nil
}

func (t championTx) Savepoint(context.Context) (repository.ChampionTx, error) {
	if t.closed {
		return nil, errTxClosed
	}
	return championTx{t.savepoint()}, nil
}

func (t *Tx) GetSeason(_ context.Context, seasonID int64) (*domain.Season, error) {
	return t.store.st.season(seasonID)
}

func (t *Tx) GetChampionPrediction(_ context.Context, userID string, seasonID int64) (*domain.ChampionPrediction, error) {
	for _, cp := range t.store.st.champions {
		if cp.UserID == userID && cp.SeasonID == seasonID {
			return &cp, nil
		}
	}
	return nil, nil
}

func (t *Tx) CreateChampionPrediction(_ context.Context, cp *domain.ChampionPrediction) error {
	st := t.store.st
	for _, existing := range st.champions {
		if existing.UserID == cp.UserID && existing.SeasonID == cp.SeasonID {
			return domain.ErrAlreadyPredicted
		}
	}
	cp.ID = st.id()
	cp.CreatedAt = t.store.Now()
	st.champions[cp.ID] = *cp
	return nil
}

func (t *Tx) GetSeasonChampionForUpdate(_ context.Context, seasonID int64) (*domain.SeasonChampion, error) {
	sc, ok := t.store.st.confirmed[seasonID]
	if !ok {
		return nil, nil
	}
	return &sc, nil
}

func (t *Tx) InsertSeasonChampion(_ context.Context, sc *domain.SeasonChampion) error {
	if _, ok := t.store.st.confirmed[sc.SeasonID]; ok {
		return domain.ErrAlreadyResolved
	}
	t.store.st.confirmed[sc.SeasonID] = *sc
	return nil
}

func (t *Tx) ListPendingChampionPredictionsForUpdate(_ context.Context, seasonID int64) ([]domain.ChampionPrediction, error) {
	var rows []domain.ChampionPrediction
	for _, cp := range t.store.st.champions {
		if cp.SeasonID == seasonID && cp.CalculatedAt == nil {
			rows = append(rows, cp)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

func (t *Tx) SettleChampionPrediction(_ context.Context, id int64, status domain.ChampionStatus, pointsEarned int64, calculatedAt time.Time) error {
	cp, ok := t.store.st.champions[id]
	if !ok {
		return domain.ErrPredictionNotFound
	}
	if cp.CalculatedAt != nil {
		return domain.ErrAlreadyCalculated
	}
	cp.Status = status
	cp.PointsEarned = pointsEarned
	cp.CalculatedAt = &calculatedAt
	t.store.st.champions[id] = cp
	return nil
}
