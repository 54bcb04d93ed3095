package runner

import (
	"context"
	"testing"
	"time"
)

func TestNewGlobalLock_DisabledIsNil(t *testing.T) {
	if lock := NewGlobalLock(false); lock != nil {
		t.Fatalf("expected nil lock for disabled mode, got %v", lock)
	}
}

func TestGlobalLock_NilIsSafe(t *testing.T) {
	var lock *GlobalLock

	lock.Acquire()
	lock.Release()

	ran := false
	lock.Blocking(func() { ran = true })
	if !ran {
		t.Fatal("Blocking must run fn on a nil lock")
	}
}

func TestGlobalLock_BlockingReleasesLock(t *testing.T) {
	lock := NewGlobalLock(true)
	lock.Acquire()

	acquired := make(chan struct{})
	go func() {
		lock.Acquire()
		lock.Release()
		close(acquired)
	}()

	done := make(chan struct{})
	go func() {
		// If Blocking failed to release, the other goroutine never gets the
		// lock and this deadlocks.
		lock.Blocking(func() { <-acquired })
		lock.Release()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Blocking did not release the lock")
	}
}

func TestAllowBlocking_WithoutLockRunsFn(t *testing.T) {
	ran := false
	AllowBlocking(context.Background(), func() { ran = true })
	if !ran {
		t.Fatal("AllowBlocking must run fn when no lock is installed")
	}
}
