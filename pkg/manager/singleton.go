package manager

import "sync"

var (
	instanceMu sync.RWMutex
	instance   *Manager
)

// Instance returns the shared process-wide Manager, constructing it on
// the first call. Concurrent first calls construct exactly once and
// all observe the same instance.
func Instance() *Manager {
	instanceMu.RLock()
	if m := instance; m != nil {
		instanceMu.RUnlock()
		return m
	}
	instanceMu.RUnlock()

	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		instance = NewManager()
	}
	return instance
}

// Reset discards the shared instance so the next Instance call
// constructs a fresh one. Intended for tests.
func Reset() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance = nil
}
