// Package memstore is an in-memory implementation of every repository
// interface, used by service tests. A transaction holds the store lock for
// its whole lifetime and restores a snapshot on rollback; savepoints nest
// the same way. Non-transactional methods must not be called while the same
// goroutine holds an open transaction.
package memstore

import (
	"context"
	"errors"
	"maps"
	"sync"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

type state struct {
	users        map[string]domain.User
	seasons      map[int64]domain.Season
	rounds       map[int64]domain.Round
	matches      map[int64]domain.Match
	predictions  map[int64]domain.Prediction
	transactions []domain.PointTransaction
	champions    map[int64]domain.ChampionPrediction
	confirmed    map[int64]domain.SeasonChampion
	leaderboards map[domain.Scope][]domain.LeaderboardEntry
	nextID       int64
}

func newState() *state {
	return &state{
		users:        map[string]domain.User{},
		seasons:      map[int64]domain.Season{},
		rounds:       map[int64]domain.Round{},
		matches:      map[int64]domain.Match{},
		predictions:  map[int64]domain.Prediction{},
		champions:    map[int64]domain.ChampionPrediction{},
		confirmed:    map[int64]domain.SeasonChampion{},
		leaderboards: map[domain.Scope][]domain.LeaderboardEntry{},
	}
}

// clone copies every table. Values are stored by value, so map copies are
// deep apart from slices, which are never mutated in place.
func (s *state) clone() *state {
	c := &state{
		users:        maps.Clone(s.users),
		seasons:      maps.Clone(s.seasons),
		rounds:       maps.Clone(s.rounds),
		matches:      maps.Clone(s.matches),
		predictions:  maps.Clone(s.predictions),
		transactions: append([]domain.PointTransaction(nil), s.transactions...),
		champions:    maps.Clone(s.champions),
		confirmed:    maps.Clone(s.confirmed),
		leaderboards: maps.Clone(s.leaderboards),
		nextID:       s.nextID,
	}
	return c
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

// Store is the in-memory database
type Store struct {
	mu sync.Mutex
	st *state

	// Now stamps created_at / updated_at columns
	Now func() time.Time

	// InsertTransactionHook, when set, can fail a ledger insert
	InsertTransactionHook func(entry domain.LedgerEntry) error
}

// New creates an empty store
func New() *Store {
	return &Store{st: newState(), Now: time.Now}
}

var errTxClosed = errors.New(domain.ErrMsgTxClosed)

// Tx is a transaction or savepoint over the store
type Tx struct {
	store    *Store
	snapshot *state
	outer    bool
	closed   bool
}

func (s *Store) begin() *Tx {
	s.mu.Lock()
	return &Tx{store: s, snapshot: s.st.clone(), outer: true}
}

func (t *Tx) savepoint() *Tx {
	return &Tx{store: t.store, snapshot: t.store.st.clone()}
}

// Commit keeps the work done through the transaction
func (t *Tx) Commit(context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	if t.outer {
		t.store.mu.Unlock()
	}
	return nil
}

// Rollback restores the state captured when the transaction began
func (t *Tx) Rollback(context.Context) error {
	if t.closed {
		return errTxClosed
	}
	t.closed = true
	t.store.st = t.snapshot
	if t.outer {
		t.store.mu.Unlock()
	}
	return nil
}
