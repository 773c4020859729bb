package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()
	assert.Same(t, lm.GetLock(MatchKey(1)), lm.GetLock(MatchKey(1)))
	assert.NotSame(t, lm.GetLock(MatchKey(1)), lm.GetLock(MatchKey(2)))
	assert.NotSame(t, lm.GetLock(MatchKey(1)), lm.GetLock(SeasonKey(1)))
}

func TestGetLock_SerializesWork(t *testing.T) {
	lm := NewLockManager()
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := lm.GetLock(ScopeKey("all_time"))
			l.Lock()
			counter++
			l.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}
