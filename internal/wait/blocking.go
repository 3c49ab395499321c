package wait

import (
	"context"
	"sync"
	"sync/atomic"
)

type blockingPolicy struct{}

// Blocking returns the condition-variable policy.
func Blocking() Policy {
	return blockingPolicy{}
}

func (blockingPolicy) Name() string { return "blocking" }

func (blockingPolicy) Bind(mu sync.Locker) Waiter {
	return NewCondWaiter(mu)
}

// CondWaiter parks waiters on one sync.Cond per Signal.
//
// Context cancellation is delivered with context.AfterFunc: when ctx ends the
// callback takes the lock and broadcasts, so the parked waiter re-checks
// ctx.Err() and leaves.
type CondWaiter struct {
	mu      sync.Locker
	conds   [2]*sync.Cond
	wakeups atomic.Uint64
}

// NewCondWaiter creates a CondWaiter bound to mu.
func NewCondWaiter(mu sync.Locker) *CondWaiter {
	return &CondWaiter{
		mu:    mu,
		conds: [2]*sync.Cond{sync.NewCond(mu), sync.NewCond(mu)},
	}
}

// Wait parks on the Cond for s until ready() holds.
func (w *CondWaiter) Wait(ctx context.Context, s Signal, ready func() bool) error {
	if ready() {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	c := w.conds[s]
	stop := context.AfterFunc(ctx, func() {
		w.mu.Lock()
		c.Broadcast()
		w.mu.Unlock()
	})
	defer stop()

	for !ready() {
		if err := ctx.Err(); err != nil {
			// A Notify may have picked this waiter. Hand it on so the
			// wakeup is not lost to a goroutine that is leaving.
			c.Signal()
			return err
		}
		c.Wait()
		w.wakeups.Add(1)
	}
	return nil
}

// Notify wakes one waiter on s.
func (w *CondWaiter) Notify(s Signal) {
	w.conds[s].Signal()
}

// Broadcast wakes all waiters on s.
func (w *CondWaiter) Broadcast(s Signal) {
	w.conds[s].Broadcast()
}

// Wakeups returns how many times a parked waiter resumed.
func (w *CondWaiter) Wakeups() uint64 {
	return w.wakeups.Load()
}
