package dispatch

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abhisek/pytutor/internal/engine"
)

// countingHandler tracks how many events run concurrently per user.
type countingHandler struct {
	mu      sync.Mutex
	active  map[string]int
	peak    map[string]int
	handled atomic.Int64
	delay   time.Duration
}

func newCountingHandler(delay time.Duration) *countingHandler {
	return &countingHandler{
		active: make(map[string]int),
		peak:   make(map[string]int),
		delay:  delay,
	}
}

func (h *countingHandler) Handle(_ context.Context, userID string, _ engine.Event) (engine.Outcome, error) {
	h.mu.Lock()
	h.active[userID]++
	if h.active[userID] > h.peak[userID] {
		h.peak[userID] = h.active[userID]
	}
	h.mu.Unlock()

	time.Sleep(h.delay)

	h.mu.Lock()
	h.active[userID]--
	h.mu.Unlock()

	h.handled.Add(1)
	return engine.Outcome{}, nil
}

func TestSameUserEventsAreSerialized(t *testing.T) {
	h := newCountingHandler(2 * time.Millisecond)
	d := New(h)

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := d.Handle(t.Context(), "u1", engine.RequestStats{}); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := h.handled.Load(); got != 20 {
		t.Errorf("handled = %d, want 20", got)
	}
	if h.peak["u1"] != 1 {
		t.Errorf("peak concurrency for u1 = %d, want 1", h.peak["u1"])
	}
}

func TestDistinctUsersRunConcurrently(t *testing.T) {
	h := newCountingHandler(20 * time.Millisecond)
	d := New(h)

	start := time.Now()
	var wg sync.WaitGroup
	for _, user := range []string{"u1", "u2", "u3", "u4"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Handle(t.Context(), user, engine.RequestStats{})
		}()
	}
	wg.Wait()

	// Serialized execution would take at least 80ms.
	if elapsed := time.Since(start); elapsed > 60*time.Millisecond {
		t.Errorf("distinct users appear serialized: took %v", elapsed)
	}
}

func TestNonBlockingReturnsBusy(t *testing.T) {
	h := newCountingHandler(50 * time.Millisecond)
	d := New(h, WithNonBlocking())

	release := make(chan struct{})
	go func() {
		defer close(release)
		d.Handle(context.Background(), "u1", engine.RequestStats{})
	}()

	// Wait for the first event to take the lock.
	time.Sleep(10 * time.Millisecond)

	_, err := d.Handle(t.Context(), "u1", engine.RequestStats{})
	if !errors.Is(err, engine.ErrBusy) {
		t.Errorf("error = %v, want ErrBusy", err)
	}

	<-release

	// Once the first event finishes, the user is dispatchable again.
	if _, err := d.Handle(t.Context(), "u1", engine.RequestStats{}); err != nil {
		t.Errorf("post-release dispatch failed: %v", err)
	}
}

func TestBlockingQueuesInsteadOfFailing(t *testing.T) {
	h := newCountingHandler(10 * time.Millisecond)
	d := New(h)

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Handle(t.Context(), "u1", engine.RequestStats{})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("blocking dispatcher returned error: %v", err)
		}
	}
}
