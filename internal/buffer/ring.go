package buffer

// Ring is a fixed-size circular buffer.
//
// Storage is rounded up to a power of two so slots are addressed with a mask,
// but the logical capacity stays exactly what was asked for: a Ring created
// with capacity 10 holds 10 items, not 16.
type Ring[T any] struct {
	buf   []T
	mask  uint64
	head  uint64 // next write
	tail  uint64 // next read
	limit uint64
}

// NewRing creates a Ring holding at most capacity items.
// A capacity below 1 is treated as 1.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	n := nextPow2(capacity)
	return &Ring[T]{
		buf:   make([]T, n),
		mask:  n - 1,
		limit: uint64(capacity),
	}
}

// Push adds an item to the ring.
// Returns false if the ring is full.
func (r *Ring[T]) Push(v T) bool {
	if r.head-r.tail >= r.limit {
		return false
	}
	r.buf[r.head&r.mask] = v
	r.head++
	return true
}

// Pop removes and returns the oldest item.
// Returns false if the ring is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T
	if r.tail == r.head {
		return zero, false
	}
	slot := r.tail & r.mask
	v := r.buf[slot]
	r.buf[slot] = zero // drop the reference so popped items can be collected
	r.tail++
	return v, true
}

// Len returns the current number of items in the ring.
func (r *Ring[T]) Len() int {
	return int(r.head - r.tail)
}

// Cap returns the logical capacity.
func (r *Ring[T]) Cap() int {
	return int(r.limit)
}
