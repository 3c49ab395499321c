package wait

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

type pollingPolicy struct {
	intervals [2]time.Duration // indexed by Signal
}

// Polling returns the busy-wait policy.
//
// Waiters release the lock, pause for interval and re-check. An interval of
// zero or less never sleeps: the waiter only yields the processor between
// checks, which is the tightest (and most wasteful) spin.
func Polling(interval time.Duration) Policy {
	return PollingSplit(interval, interval)
}

// PollingSplit is Polling with separate pauses for producers waiting on
// NotFull and consumers waiting on NotEmpty. The classic mutex demo spins the
// producer unslept and sleeps only the consumer: PollingSplit(0, time.Millisecond).
func PollingSplit(producer, consumer time.Duration) Policy {
	var p pollingPolicy
	p.intervals[NotFull] = producer
	p.intervals[NotEmpty] = consumer
	return p
}

func (p pollingPolicy) Name() string { return "polling" }

func (p pollingPolicy) Bind(mu sync.Locker) Waiter {
	return &PollWaiter{mu: mu, intervals: p.intervals}
}

// PollWaiter re-checks the predicate on a fixed interval per Signal.
// Notify and Broadcast are no-ops: nobody is parked to be woken.
type PollWaiter struct {
	mu        sync.Locker
	intervals [2]time.Duration
	wakeups   atomic.Uint64
}

// NewPollWaiter creates a PollWaiter bound to mu that pauses interval on
// either Signal.
func NewPollWaiter(mu sync.Locker, interval time.Duration) *PollWaiter {
	return &PollWaiter{mu: mu, intervals: [2]time.Duration{interval, interval}}
}

// Wait polls ready() until it holds or ctx ends.
func (w *PollWaiter) Wait(ctx context.Context, s Signal, ready func() bool) error {
	for !ready() {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.mu.Unlock()
		w.pause(ctx, w.intervals[s])
		w.mu.Lock()
		w.wakeups.Add(1)
	}
	return nil
}

func (w *PollWaiter) pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		runtime.Gosched()
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Notify is a no-op.
func (w *PollWaiter) Notify(Signal) {}

// Broadcast is a no-op.
func (w *PollWaiter) Broadcast(Signal) {}

// Wakeups returns how many times a waiter re-checked after pausing.
func (w *PollWaiter) Wakeups() uint64 {
	return w.wakeups.Load()
}

// Interval returns the pause between checks for waiters on s.
func (w *PollWaiter) Interval(s Signal) time.Duration {
	return w.intervals[s]
}
