package tick

import (
	"sync/atomic"
	"time"
)

// AtomicTicker fires once the next deadline has passed.
//
// The deadline is an atomic nanotime value. A goroutine that sees it expired
// moves it forward with a compare-and-swap, so when several goroutines check
// the same ticker only one of them fires per interval.
type AtomicTicker struct {
	period int64
	next   atomic.Int64
}

// NewAtomicTicker returns an AtomicTicker whose first deadline is one
// interval from now.
func NewAtomicTicker(interval time.Duration) *AtomicTicker {
	a := &AtomicTicker{period: int64(interval)}
	a.Reset()
	return a
}

func (a *AtomicTicker) Tick() bool {
	now := nanotime()
	deadline := a.next.Load()
	if now < deadline {
		return false
	}
	return a.next.CompareAndSwap(deadline, now+a.period)
}

func (a *AtomicTicker) Reset() { a.next.Store(nanotime() + a.period) }

func (a *AtomicTicker) Stop() {}

func (a *AtomicTicker) Interval() time.Duration { return time.Duration(a.period) }
