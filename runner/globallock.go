package runner

import (
	"context"
	"sync"
)

// GlobalLock models a runtime-wide mutual-exclusion lock: while one
// in-process worker holds it, no other worker makes forward progress on
// computational work. It exists so both execution modes (lock present and
// lock absent) are testable from a single build; a nil *GlobalLock is the
// "lock absent" mode and every method is a no-op on it.
type GlobalLock struct {
	mu sync.Mutex
}

// NewGlobalLock returns a lock when enabled is true and nil otherwise.
// Callers never need to branch on the mode themselves.
func NewGlobalLock(enabled bool) *GlobalLock {
	if !enabled {
		return nil
	}
	return &GlobalLock{}
}

// Acquire takes the lock. No-op on a nil lock.
func (g *GlobalLock) Acquire() {
	if g == nil {
		return
	}
	g.mu.Lock()
}

// Release drops the lock. No-op on a nil lock.
func (g *GlobalLock) Release() {
	if g == nil {
		return
	}
	g.mu.Unlock()
}

// Blocking runs fn with the lock released, reacquiring it before returning.
// This is how blocking I/O is modeled: the lock is held for computation but
// handed back to other workers for the duration of a network or disk wait.
// The caller must hold the lock. On a nil lock fn simply runs.
func (g *GlobalLock) Blocking(fn func()) {
	if g == nil {
		fn()
		return
	}
	g.mu.Unlock()
	defer g.mu.Lock()
	fn()
}

type lockContextKey struct{}

// withLock stores the lock in the context so work functions can release it
// across blocking sections without the runner's wiring leaking into their
// signatures.
func withLock(ctx context.Context, g *GlobalLock) context.Context {
	if g == nil {
		return ctx
	}
	return context.WithValue(ctx, lockContextKey{}, g)
}

// lockFromContext returns the lock installed by the goroutine runner, or nil
// when running without one (including in the sequential and process modes).
func lockFromContext(ctx context.Context) *GlobalLock {
	g, _ := ctx.Value(lockContextKey{}).(*GlobalLock)
	return g
}

// AllowBlocking runs fn with the global lock (if any) released. Work
// functions wrap their blocking I/O calls in it; under a lock-free
// configuration it is free.
func AllowBlocking(ctx context.Context, fn func()) {
	lockFromContext(ctx).Blocking(fn)
}
