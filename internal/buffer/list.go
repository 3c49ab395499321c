package buffer

import "github.com/eapache/queue"

// List is a Buffer on top of eapache/queue.
//
// The underlying queue grows and shrinks its ring as needed, so memory follows
// the actual fill level rather than the capacity. The capacity is enforced here.
type List[T any] struct {
	q     *queue.Queue
	limit int
}

// NewList creates a List holding at most capacity items.
func NewList[T any](capacity int) *List[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &List[T]{
		q:     queue.New(),
		limit: capacity,
	}
}

// Push adds an item.
// Returns false if the list is full.
func (l *List[T]) Push(v T) bool {
	if l.q.Length() >= l.limit {
		return false
	}
	l.q.Add(v)
	return true
}

// Pop removes and returns the oldest item.
// Returns false if the list is empty.
func (l *List[T]) Pop() (T, bool) {
	if l.q.Length() == 0 {
		var zero T
		return zero, false
	}
	return l.q.Remove().(T), true
}

// Len returns the current number of items.
func (l *List[T]) Len() int {
	return l.q.Length()
}

// Cap returns the logical capacity.
func (l *List[T]) Cap() int {
	return l.limit
}
