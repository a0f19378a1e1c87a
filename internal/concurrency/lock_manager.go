package concurrency

import (
	"sync"
)

// LockManager hands out one named mutex per key
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Acquire locks every key in the order given and returns a func that releases them in reverse.
// Callers must pass keys in a consistent order across code paths.
func (lm *LockManager) Acquire(keys ...string) (release func()) {
	held := make([]*sync.Mutex, 0, len(keys))
	for _, k := range keys {
		mu := lm.GetLock(k)
		mu.Lock()
		held = append(held, mu)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
