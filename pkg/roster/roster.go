package roster

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Subscriber receives broadcast notification messages.
type Subscriber interface {
	Update(ctx context.Context, message string) error
}

// Roster is an ordered collection of subscribers. It is safe for
// concurrent use; broadcasts themselves run synchronously in the
// calling goroutine.
type Roster struct {
	mu          sync.Mutex
	subscribers []Subscriber
}

// New creates an empty roster.
func New() *Roster {
	return &Roster{}
}

// Subscribe appends s to the roster. Duplicate registrations are kept;
// nil subscribers are ignored.
func (r *Roster) Subscribe(s Subscriber) {
	if s == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, s)
}

// Unsubscribe removes the first registration equal to s, comparing
// interface identity. Removing an unknown subscriber is a no-op.
func (r *Roster) Unsubscribe(s Subscriber) {
	if s == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if i := slices.Index(r.subscribers, s); i >= 0 {
		r.subscribers = slices.Delete(r.subscribers, i, i+1)
	}
}

// NotifyAll sends message to every subscriber in insertion order.
//
// The collection is snapshotted before the first Update call, so
// registrations changed during a broadcast take effect on the next
// one. The first subscriber error aborts the broadcast; remaining
// subscribers are not notified.
func (r *Roster) NotifyAll(ctx context.Context, message string) error {
	r.mu.Lock()
	snapshot := slices.Clone(r.subscribers)
	r.mu.Unlock()

	for i, s := range snapshot {
		if err := s.Update(ctx, message); err != nil {
			return fmt.Errorf("notify subscriber %d: %w", i, err)
		}
	}
	return nil
}

// Len reports the number of registrations.
func (r *Roster) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subscribers)
}
