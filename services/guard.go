package services

import (
	"errors"
	"sync/atomic"
)

// ErrServerBusy is returned when the counter guard queue is full.
// Callers should fail the request fast instead of queueing forever.
var ErrServerBusy = errors.New("counter guard queue is full")

// admissionGuard admits one holder at a time and queues a bounded
// number of waiters. It serializes the fetch-increment-write sequence
// within this process only; separate process instances can still race
// on the same key, and the storage layer resolves that last-write-wins.
type admissionGuard struct {
	slot     chan struct{}
	pending  int64
	capacity int64
}

// newAdmissionGuard creates a guard that admits at most capacity
// callers (one holding, the rest waiting).
func newAdmissionGuard(capacity int) *admissionGuard {
	return &admissionGuard{
		slot:     make(chan struct{}, 1),
		capacity: int64(capacity),
	}
}

// Acquire blocks until the guard is free. Once capacity callers are
// already admitted it returns ErrServerBusy immediately.
func (g *admissionGuard) Acquire() error {
	if atomic.AddInt64(&g.pending, 1) > g.capacity {
		atomic.AddInt64(&g.pending, -1)
		return ErrServerBusy
	}
	g.slot <- struct{}{}
	return nil
}

// Release frees the guard for the next waiter. Must be called exactly
// once per successful Acquire.
func (g *admissionGuard) Release() {
	<-g.slot
	atomic.AddInt64(&g.pending, -1)
}
