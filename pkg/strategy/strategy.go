package strategy

import (
	"context"
	"sync"
)

// Strategy delivers a notification message over one channel.
type Strategy interface {
	Send(ctx context.Context, message string) error
}

// Manager holds the currently selected delivery strategy.
// It is safe for concurrent use.
type Manager struct {
	mu      sync.RWMutex
	current Strategy
}

// New creates a manager with no strategy installed.
func New() *Manager {
	return &Manager{}
}

// SetStrategy installs s as the current strategy, replacing any
// previous one. A nil s clears the selection.
func (m *Manager) SetStrategy(s Strategy) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = s
}

// Current returns the installed strategy, or nil when none is set.
func (m *Manager) Current() Strategy {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Send delivers message through the current strategy. With no strategy
// installed it does nothing and returns nil.
func (m *Manager) Send(ctx context.Context, message string) error {
	m.mu.RLock()
	s := m.current
	m.mu.RUnlock()

	if s == nil {
		return nil
	}
	return s.Send(ctx, message)
}
