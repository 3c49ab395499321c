// Package unsync holds the intentionally broken producer/consumer queue.
//
// # WARNING: INCORRECT BY CONSTRUCTION
//
// Racy has no synchronization on its storage. Driven by one goroutine it is a
// plain bounded FIFO. Driven by a producer and consumers on different
// goroutines it loses items, hands the same item to two consumers and reports
// inconsistent lengths. It exists only as the reference point the
// synchronized queue (package boundedq) is measured against.
//
// The race detector flags every concurrent use, which is the point. Tests
// that run it concurrently are excluded from -race builds.
//
// It never panics: slots are addressed through a mask over a fixed
// power-of-two array, so a stale index still lands inside the slice.
package unsync

import (
	"github.com/randomizedcoder/go-prodcons/internal/cancel"
)

// Racy is an unsynchronized bounded FIFO with a producer-done flag.
//
// Only the done flag is safe for concurrent use: it is a cancel.Flag,
// mirroring the atomic "producer finished" flag of the classic broken demo.
type Racy[T any] struct {
	buf   []T
	mask  uint64
	head  uint64 // RACE: written by producer, read by consumers
	tail  uint64 // RACE: written by every consumer
	limit uint64
	done  *cancel.Flag
}

// New creates a Racy queue holding at most capacity items.
// A capacity below 1 is treated as 1.
func New[T any](capacity int) *Racy[T] {
	if capacity < 1 {
		capacity = 1
	}
	n := uint64(1)
	for n < uint64(capacity) {
		n <<= 1
	}
	return &Racy[T]{
		buf:   make([]T, n),
		mask:  n - 1,
		limit: uint64(capacity),
		done:  cancel.NewFlag(),
	}
}

// TryPush appends v if the queue looks non-full.
// Returns false when full; the caller decides whether to drop or retry.
func (r *Racy[T]) TryPush(v T) bool {
	// RACE: check-then-act, tail may move between the check and the write
	if r.head-r.tail >= r.limit {
		return false
	}
	r.buf[r.head&r.mask] = v
	r.head++
	return true
}

// TryPop removes the oldest item if the queue looks non-empty.
func (r *Racy[T]) TryPop() (T, bool) {
	// RACE: two consumers can read the same tail and return the same item
	tail := r.tail
	if tail >= r.head {
		var zero T
		return zero, false
	}
	v := r.buf[tail&r.mask]
	r.tail = tail + 1
	return v, true
}

// Len returns the apparent number of items, clamped to [0, Cap()].
func (r *Racy[T]) Len() int {
	head, tail := r.head, r.tail
	if tail >= head {
		return 0
	}
	n := head - tail
	if n > r.limit {
		return int(r.limit)
	}
	return int(n)
}

// Cap returns the capacity.
func (r *Racy[T]) Cap() int {
	return int(r.limit)
}

// SignalDone marks that no more items will be pushed. It reports whether
// this call was the one that ended the stream.
func (r *Racy[T]) SignalDone() bool {
	return r.done.Raise()
}

// Done reports whether SignalDone has been called.
func (r *Racy[T]) Done() bool {
	return r.done.Done()
}

// Reset empties the queue and clears the done flag.
// Not safe to call while any other goroutine uses the queue.
func (r *Racy[T]) Reset() {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.head, r.tail = 0, 0
	r.done.Reset()
}
