package buffer

// Channel wraps a buffered channel as a Buffer.
//
// Each Push/Pop is a non-blocking channel operation via select with default.
// Under the queue lock this only costs the channel's own internal locking.
type Channel[T any] struct {
	ch chan T
}

// NewChannel creates a Channel with the specified capacity.
func NewChannel[T any](capacity int) *Channel[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Channel[T]{
		ch: make(chan T, capacity),
	}
}

// Push adds an item.
// Returns false if the channel buffer is full.
func (c *Channel[T]) Push(v T) bool {
	select {
	case c.ch <- v:
		return true
	default:
		return false
	}
}

// Pop removes and returns an item.
// Returns false if the channel buffer is empty.
func (c *Channel[T]) Pop() (T, bool) {
	select {
	case v := <-c.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the current number of buffered items.
func (c *Channel[T]) Len() int {
	return len(c.ch)
}

// Cap returns the channel's buffer size.
func (c *Channel[T]) Cap() int {
	return cap(c.ch)
}
