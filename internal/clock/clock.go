// Package clock provides an injectable time source so bidding-window and
// expiry checks can be controlled deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time to validators and use cases.
type Clock interface {
	Now() time.Time
}

// Real is a Clock backed by the system time.
type Real struct{}

// Now returns the current system time in UTC.
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fixed is a Clock that returns a controllable instant. Safe for concurrent use.
type Fixed struct {
	mu  sync.RWMutex
	now time.Time
}

// NewFixed creates a Fixed clock pinned to the given instant.
func NewFixed(now time.Time) *Fixed {
	return &Fixed{now: now}
}

// Now returns the pinned instant.
func (f *Fixed) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.now
}

// Set pins the clock to a new instant.
func (f *Fixed) Set(now time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = now
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}
