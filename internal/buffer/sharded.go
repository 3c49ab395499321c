package buffer

import (
	"fmt"

	ring "github.com/randomizedcoder/go-lock-free-ring"
)

// shardedProducer is the producer ID used for every write. The bounded queue
// serializes producers behind its lock, so one shard is enough.
const shardedProducer uint64 = 0

// Sharded adapts go-lock-free-ring's ShardedRing (an MPSC ring) to Buffer.
//
// The ring is sized to the next power of two at or above capacity and the
// logical capacity is enforced with an exact item count, since the ring itself
// does not report how many items it holds.
type Sharded[T any] struct {
	r     *ring.ShardedRing
	n     int
	limit int
}

// NewSharded creates a Sharded buffer holding at most capacity items.
func NewSharded[T any](capacity int) (*Sharded[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCapacity, capacity)
	}
	r, err := ring.NewShardedRing(nextPow2(capacity), 1)
	if err != nil {
		return nil, fmt.Errorf("buffer: sharded ring: %w", err)
	}
	return &Sharded[T]{r: r, limit: capacity}, nil
}

// Push adds an item.
// Returns false if the buffer is full or the ring refused the write.
func (s *Sharded[T]) Push(v T) bool {
	if s.n >= s.limit {
		return false
	}
	if !s.r.Write(shardedProducer, v) {
		return false
	}
	s.n++
	return true
}

// Pop removes and returns the oldest item.
// Returns false if the buffer is empty.
func (s *Sharded[T]) Pop() (T, bool) {
	var zero T
	if s.n == 0 {
		return zero, false
	}
	v, ok := s.r.TryRead()
	if !ok {
		return zero, false
	}
	s.n--
	return v.(T), true
}

// Len returns the current number of items.
func (s *Sharded[T]) Len() int {
	return s.n
}

// Cap returns the logical capacity.
func (s *Sharded[T]) Cap() int {
	return s.limit
}
