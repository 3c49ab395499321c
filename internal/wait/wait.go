// Package wait provides the wait strategies used by the bounded queue.
//
// A Policy binds to the queue's lock and yields a Waiter. Two policies exist:
//   - Blocking: waiters park on a sync.Cond and consume no CPU until signalled
//   - Polling: waiters drop the lock, sleep a short interval and re-check
//
// Both are correct. Polling is the deliberately wasteful posture: it keeps
// waking up to re-check a predicate that has usually not changed, and the
// Wakeups counter makes that cost visible.
//
// # Locking contract
//
// Wait, Notify and Broadcast must be called with the bound lock held. Wait
// returns with the lock held, whether or not it returns an error.
package wait

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Signal names the condition a waiter is waiting for.
type Signal int

const (
	// NotEmpty is awaited by consumers.
	NotEmpty Signal = iota
	// NotFull is awaited by producers.
	NotFull
)

func (s Signal) String() string {
	switch s {
	case NotEmpty:
		return "not-empty"
	case NotFull:
		return "not-full"
	default:
		return fmt.Sprintf("signal(%d)", int(s))
	}
}

// Waiter suspends callers until a predicate holds.
type Waiter interface {
	// Wait returns once ready() reports true, or with ctx.Err() if the
	// context ends first. ready is always evaluated with the lock held.
	Wait(ctx context.Context, s Signal, ready func() bool) error

	// Notify wakes one goroutine waiting on s.
	Notify(s Signal)

	// Broadcast wakes every goroutine waiting on s.
	Broadcast(s Signal)

	// Wakeups returns how many times a suspended waiter resumed to re-check
	// its predicate.
	Wakeups() uint64
}

// Policy creates Waiters bound to a lock.
type Policy interface {
	// Name identifies the policy in logs and reports.
	Name() string

	// Bind returns a Waiter that suspends on mu.
	Bind(mu sync.Locker) Waiter
}

// DefaultPollInterval matches the short sleep of the classic busy-wait loop.
const DefaultPollInterval = time.Millisecond

// Parse maps a policy name to a Policy. The empty string selects Blocking.
// The interval only applies to Polling.
func Parse(name string, interval time.Duration) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "blocking":
		return Blocking(), nil
	case "polling":
		return Polling(interval), nil
	default:
		return nil, fmt.Errorf("wait: unknown policy %q", name)
	}
}
