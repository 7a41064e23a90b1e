// Package ratelimit throttles lead submissions per client with a sliding
// window: at most limit accepted attempts within any window-long interval.
// Rejected attempts are not recorded, so a sustained flood cannot keep the
// window from draining.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Window is an in-process sliding-window limiter. State lives only for the
// process lifetime.
type Window struct {
	buckets  sync.Map // map[string]*bucket
	limit    int
	window   time.Duration
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	mu   sync.Mutex
	hits []time.Time // ascending
	dead bool        // removed from the map by the janitor
}

// Option configures a Window.
type Option func(*Window)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Window) { w.now = now }
}

// NewWindow creates a limiter allowing limit attempts per window per client.
// A positive cleanupInterval starts a janitor that drops idle clients; call
// Stop on shutdown.
func NewWindow(limit int, window, cleanupInterval time.Duration, opts ...Option) *Window {
	w := &Window{
		limit:  limit,
		window: window,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if cleanupInterval > 0 {
		go w.cleanup(cleanupInterval)
	}
	return w
}

// Stop terminates the background janitor. Safe to call more than once.
func (w *Window) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
}

// Allow records an attempt for clientID and reports whether it fits the window.
func (w *Window) Allow(_ context.Context, clientID string) bool {
	for {
		val, _ := w.buckets.LoadOrStore(clientID, &bucket{})
		b := val.(*bucket)

		b.mu.Lock()
		if b.dead {
			b.mu.Unlock()
			continue
		}
		now := w.now()
		b.prune(now, w.window)
		allowed := len(b.hits) < w.limit
		if allowed {
			b.hits = append(b.hits, now)
		}
		b.mu.Unlock()
		return allowed
	}
}

// Len returns the number of tracked clients.
func (w *Window) Len() int {
	n := 0
	w.buckets.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// prune drops hits that are at least window old. Caller holds b.mu.
func (b *bucket) prune(now time.Time, window time.Duration) {
	i := 0
	for i < len(b.hits) && now.Sub(b.hits[i]) >= window {
		i++
	}
	if i > 0 {
		b.hits = append(b.hits[:0], b.hits[i:]...)
	}
}

func (w *Window) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *Window) sweep() {
	now := w.now()
	w.buckets.Range(func(key, value any) bool {
		b := value.(*bucket)
		b.mu.Lock()
		b.prune(now, w.window)
		if len(b.hits) == 0 {
			b.dead = true
			w.buckets.CompareAndDelete(key, b)
		}
		b.mu.Unlock()
		return true
	})
}
