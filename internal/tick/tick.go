// Package tick provides non-blocking periodic triggers for hot loops.
//
// The producer loop checks a Ticker once per item to decide when to log
// progress. The check has to be much cheaper than handling an item, so the
// implementations avoid blocking and, where possible, the runtime timer heap:
//   - StdTicker: time.Ticker with a non-blocking receive
//   - BatchTicker: looks at the clock only every N calls
//   - AtomicTicker: atomic timestamp compare on runtime.nanotime
//   - Never: a disabled ticker
package tick

import "time"

// Ticker signals when a time interval has elapsed.
//
// StdTicker and AtomicTicker are safe for concurrent use. BatchTicker keeps an
// unsynchronized call count and must stay on one goroutine.
type Ticker interface {
	// Tick returns true if the interval has elapsed since the last tick.
	// This is a non-blocking check.
	Tick() bool

	// Reset starts a new interval from now.
	Reset()

	// Stop releases any resources held by the ticker.
	// After Stop, the ticker should not be used.
	Stop()
}

// DefaultInterval is the default progress-logging interval.
const DefaultInterval = 100 * time.Millisecond

// Kind selects a Ticker implementation.
type Kind string

const (
	KindStd    Kind = "std"
	KindBatch  Kind = "batch"
	KindAtomic Kind = "atomic"
)

// DefaultBatch is the number of calls between clock reads for KindBatch.
const DefaultBatch = 64

// New creates a Ticker of the given kind. An interval of zero or less
// returns Never(), so callers can disable periodic work without a branch.
func New(kind Kind, interval time.Duration) Ticker {
	if interval <= 0 {
		return Never()
	}
	switch kind {
	case KindStd:
		return NewTicker(interval)
	case KindBatch:
		return NewBatch(interval, DefaultBatch)
	default:
		return NewAtomicTicker(interval)
	}
}

type never struct{}

// Never returns a Ticker that never fires.
func Never() Ticker { return never{} }

func (never) Tick() bool { return false }
func (never) Reset()     {}
func (never) Stop()      {}
