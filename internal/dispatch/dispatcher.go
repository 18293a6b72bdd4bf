// Package dispatch is the concurrency boundary in front of the engine: it
// serializes events per user so each load-grade-save sequence is atomic for
// that user, while unrelated users proceed in parallel. It performs no
// business logic.
package dispatch

import (
	"context"
	"sync"

	"github.com/abhisek/pytutor/internal/engine"
)

// Handler is the engine-side contract the dispatcher guards.
type Handler interface {
	Handle(ctx context.Context, userID string, ev engine.Event) (engine.Outcome, error)
}

// Dispatcher routes inbound events to the engine under a per-user lock.
// There is no global lock: events for different users never contend.
type Dispatcher struct {
	handler Handler

	mu    sync.Mutex
	locks map[string]*sync.Mutex

	// nonBlocking selects the fail-fast policy: a second concurrent
	// event for the same user returns ErrBusy instead of queueing.
	nonBlocking bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithNonBlocking makes same-user contention fail fast with engine.ErrBusy
// rather than queue on the user's lock.
func WithNonBlocking() Option {
	return func(d *Dispatcher) { d.nonBlocking = true }
}

// New creates a Dispatcher in front of the given handler.
func New(handler Handler, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handler: handler,
		locks:   make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Handle runs one event for one user under that user's lock.
func (d *Dispatcher) Handle(ctx context.Context, userID string, ev engine.Event) (engine.Outcome, error) {
	lock := d.userLock(userID)

	if d.nonBlocking {
		if !lock.TryLock() {
			return engine.Outcome{}, engine.ErrBusy
		}
	} else {
		lock.Lock()
	}
	defer lock.Unlock()

	return d.handler.Handle(ctx, userID, ev)
}

// userLock returns the lock for userID, creating it on first contact.
// Locks are retained for the process lifetime; the per-user footprint is
// one mutex, matching the store's retain-forever progress records.
func (d *Dispatcher) userLock(userID string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	lock, ok := d.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		d.locks[userID] = lock
	}
	return lock
}
