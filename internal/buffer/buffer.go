// Package buffer provides the FIFO storage backends behind the bounded queue.
//
// Every backend implements the Buffer interface:
//   - Ring: fixed circular slice (default)
//   - Channel: buffered channel
//   - List: growable ring from github.com/eapache/queue, capped at capacity
//   - Sharded: single-shard ring from github.com/randomizedcoder/go-lock-free-ring
//
// # Concurrency
//
// Buffers are NOT synchronized. The bounded queue holds its mutex around
// every call; a Buffer used directly must be confined to one goroutine.
// Channel happens to be safe for concurrent use, but nothing relies on it.
package buffer

import (
	"errors"
	"fmt"
	"strings"
)

// Buffer is a bounded FIFO.
//
// Implementations are non-blocking: Push returns false if full,
// Pop returns false if empty.
type Buffer[T any] interface {
	// Push appends an item.
	// Returns false if the buffer already holds Cap() items.
	Push(T) bool

	// Pop removes and returns the oldest item.
	// Returns false if the buffer is empty.
	Pop() (T, bool)

	// Len returns the number of items held.
	Len() int

	// Cap returns the logical capacity.
	Cap() int
}

// Kind names a Buffer implementation.
type Kind string

const (
	KindRing    Kind = "ring"
	KindChannel Kind = "channel"
	KindList    Kind = "list"
	KindSharded Kind = "sharded"
)

// Kinds lists every backend in a stable order.
var Kinds = []Kind{KindRing, KindChannel, KindList, KindSharded}

var (
	// ErrUnknownKind is returned for a backend name that is not in Kinds.
	ErrUnknownKind = errors.New("buffer: unknown kind")

	// ErrCapacity is returned when capacity < 1.
	ErrCapacity = errors.New("buffer: capacity must be at least 1")
)

// ParseKind maps a backend name to a Kind. The empty string selects KindRing.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindRing, nil
	}
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// New creates a Buffer of the given kind holding at most capacity items.
func New[T any](kind Kind, capacity int) (Buffer[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCapacity, capacity)
	}
	switch kind {
	case KindRing, "":
		return NewRing[T](capacity), nil
	case KindChannel:
		return NewChannel[T](capacity), nil
	case KindList:
		return NewList[T](capacity), nil
	case KindSharded:
		return NewSharded[T](capacity)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// nextPow2 rounds n up to the next power of two (minimum 1).
func nextPow2(n int) uint64 {
	p := uint64(1)
	for p < uint64(n) {
		p <<= 1
	}
	return p
}
