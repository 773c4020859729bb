package concurrency

import (
	"fmt"
	"sync"
)

// LockManager hands out one mutex per key for in-process mutual exclusion
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// MatchKey is the lock key for scoring a match
func MatchKey(matchID int64) string {
	return fmt.Sprintf("match:%d", matchID)
}

// SeasonKey is the lock key for resolving a season's champion
func SeasonKey(seasonID int64) string {
	return fmt.Sprintf("season:%d", seasonID)
}

// ScopeKey is the lock key for recomputing a leaderboard scope
func ScopeKey(scope string) string {
	return "leaderboard:" + scope
}
