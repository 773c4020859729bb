package memstore

import (
	"context"
	"slices"
	"sort"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// LedgerRepo adapts the store to repository.Ledger
type LedgerRepo struct{ *Store }

var _ repository.Ledger = LedgerRepo{}
var _ repository.LedgerTx = (*Tx)(nil)

func (r LedgerRepo) BeginTx(context.Context) (repository.LedgerTx, error) {
	return r.begin(), nil
}

func (s *Store) GetUser(_ context.Context, userID string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.st.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) SumTransactions(_ context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.sum(userID), nil
}

func (s *Store) ListTransactions(_ context.Context, userID string, page domain.Page) ([]domain.PointTransaction, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rows []domain.PointTransaction
	for _, pt := range s.st.transactions {
		if pt.UserID == userID {
			rows = append(rows, pt)
		}
	}
	slices.Reverse(rows)
	return window(rows, page), len(rows), nil
}

func (s *Store) ListUserIDs(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.st.users))
	for id := range s.st.users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func window[T any](rows []T, page domain.Page) []T {
	if page.Offset >= len(rows) {
		return nil
	}
	end := page.Offset + page.Limit
	if page.Limit <= 0 || end > len(rows) {
		end = len(rows)
	}
	return rows[page.Offset:end]
}

// Transaction methods

func (t *Tx) GetUserForUpdate(_ context.Context, userID string) (*domain.User, error) {
	u, ok := t.store.st.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (t *Tx) UpdateUserStreak(_ context.Context, userID string, current, max int) error {
	u, ok := t.store.st.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.CurrentStreak, u.MaxStreak = current, max
	t.store.st.users[userID] = u
	return nil
}

func (t *Tx) InsertTransaction(_ context.Context, entry domain.LedgerEntry) (*domain.PointTransaction, error) {
	if hook := t.store.InsertTransactionHook; hook != nil {
		if err := hook(entry); err != nil {
			return nil, err
		}
	}
	st := t.store.st
	pt := domain.PointTransaction{
		ID:          st.id(),
		UserID:      entry.UserID,
		Type:        entry.Type,
		Amount:      entry.Amount,
		Description: entry.Description,
		Reference:   entry.Reference,
		CreatedAt:   t.store.Now(),
	}
	st.transactions = append(st.transactions, pt)
	return &pt, nil
}

func (t *Tx) AddToUserBalance(_ context.Context, userID string, delta int64) error {
	u, ok := t.store.st.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PointsBalance += delta
	t.store.st.users[userID] = u
	return nil
}

func (t *Tx) SetUserBalance(_ context.Context, userID string, balance int64) error {
	u, ok := t.store.st.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PointsBalance = balance
	t.store.st.users[userID] = u
	return nil
}

func (t *Tx) SumTransactions(_ context.Context, userID string) (int64, error) {
	return t.store.st.sum(userID), nil
}

func (t *Tx) ListScoredOutcomes(_ context.Context, userID string) ([]domain.ScoredOutcome, error) {
	var out []domain.ScoredOutcome
	for _, p := range t.store.st.predictions {
		if p.UserID == userID && p.CalculatedAt != nil {
			out = append(out, domain.ScoredOutcome{
				PredictionID: p.ID,
				PointsEarned: p.PointsEarned,
				CalculatedAt: *p.CalculatedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CalculatedAt.Equal(out[j].CalculatedAt) {
			return out[i].CalculatedAt.Before(out[j].CalculatedAt)
		}
		return out[i].PredictionID < out[j].PredictionID
	})
	return out, nil
}
