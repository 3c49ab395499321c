// Package boundedq provides a bounded, thread-safe FIFO for handing items from
// producers to consumers.
//
// One mutex guards the storage and the "producer finished" flag. How callers
// wait for space or for items is a pluggable wait.Policy:
//   - wait.Blocking(): not-empty / not-full condition variables (default)
//   - wait.Polling(d): release the lock, sleep d, re-check
//
// Lifecycle:
//
//	q, _ := boundedq.New[int](10)
//	q.Push(ctx, v)        // waits while full
//	q.SignalDone()        // producer: no more items
//	v, err := q.Pop(ctx)  // err == ErrDone once drained
//
// Guarantees: Len() never exceeds Cap(); items come out in push order; each
// item is returned by exactly one Pop; after SignalDone every waiter wakes and
// consumers drain what is left before seeing ErrDone.
package boundedq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/randomizedcoder/go-prodcons/internal/buffer"
	"github.com/randomizedcoder/go-prodcons/internal/wait"
)

var (
	// ErrDone is returned by Pop at end-of-stream (done and empty) and by Push
	// after SignalDone.
	ErrDone = errors.New("boundedq: producer finished")

	// ErrInvalid is returned by New for an unusable configuration.
	ErrInvalid = errors.New("boundedq: invalid configuration")
)

// Queue is a bounded FIFO safe for any number of producers and consumers.
type Queue[T any] struct {
	mu     sync.Mutex
	buf    buffer.Buffer[T]
	waiter wait.Waiter
	done   bool

	policy string
	kind   buffer.Kind
	log    *slog.Logger

	stats counters
}

// New creates an empty Queue holding at most capacity items.
func New[T any](capacity int, opts ...Option) (*Queue[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	buf, err := buffer.New[T](o.kind, capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	q := &Queue[T]{
		buf:    buf,
		policy: o.policy.Name(),
		kind:   o.kind,
		log:    o.logger,
	}
	q.waiter = o.policy.Bind(&q.mu)

	q.log.Debug("boundedq: queue created",
		"capacity", capacity,
		"policy", q.policy,
		"backend", q.kind,
	)
	return q, nil
}

// Push appends v, waiting while the queue is full.
//
// Returns ErrDone if SignalDone was called before or while waiting, and
// ctx.Err() if the context ends while waiting. On error nothing is enqueued.
func (q *Queue[T]) Push(ctx context.Context, v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.done {
		return ErrDone
	}
	if !q.canPush() {
		q.stats.producerWaits.Add(1)
		if err := q.waiter.Wait(ctx, wait.NotFull, q.canPush); err != nil {
			return err
		}
		if q.done {
			return ErrDone
		}
	}
	q.put(v)
	return nil
}

// TryPush appends v if there is room.
// Returns false if the queue is full, and ErrDone after SignalDone.
func (q *Queue[T]) TryPush(v T) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.done {
		return false, ErrDone
	}
	if q.buf.Len() >= q.buf.Cap() {
		return false, nil
	}
	q.put(v)
	return true, nil
}

// Pop removes and returns the oldest item, waiting while the queue is empty.
//
// Once SignalDone has been called and the queue is empty Pop returns ErrDone
// instead of waiting. Returns ctx.Err() if the context ends while waiting.
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if !q.canPop() {
		q.stats.consumerWaits.Add(1)
		if err := q.waiter.Wait(ctx, wait.NotEmpty, q.canPop); err != nil {
			return zero, err
		}
	}
	v, ok := q.take()
	if !ok {
		return zero, ErrDone
	}
	return v, nil
}

// TryPop removes and returns the oldest item if there is one.
// Returns false when empty; the error is ErrDone when empty and done.
func (q *Queue[T]) TryPop() (T, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	v, ok := q.take()
	if !ok && q.done {
		return v, false, ErrDone
	}
	return v, ok, nil
}

// SignalDone marks that no further items will be pushed and wakes every
// waiter. Consumers keep receiving queued items, then ErrDone.
// Safe to call multiple times.
func (q *Queue[T]) SignalDone() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.done {
		return
	}
	q.done = true
	q.waiter.Broadcast(wait.NotEmpty)
	q.waiter.Broadcast(wait.NotFull)

	q.log.Debug("boundedq: producer finished",
		"remaining", q.buf.Len(),
		"pushes", q.stats.pushes.Load(),
	)
}

// Done reports whether SignalDone has been called.
func (q *Queue[T]) Done() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.done
}

// Len returns the current number of items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Len()
}

// Cap returns the capacity.
func (q *Queue[T]) Cap() int {
	return q.buf.Cap()
}

// Policy returns the name of the wait policy.
func (q *Queue[T]) Policy() string {
	return q.policy
}

// Backend returns the storage backend kind.
func (q *Queue[T]) Backend() buffer.Kind {
	return q.kind
}

func (q *Queue[T]) canPush() bool {
	return q.done || q.buf.Len() < q.buf.Cap()
}

func (q *Queue[T]) canPop() bool {
	return q.done || q.buf.Len() > 0
}

// put appends v and wakes one consumer. Caller holds mu and has checked space.
func (q *Queue[T]) put(v T) {
	if !q.buf.Push(v) {
		panic("boundedq: buffer rejected push below capacity")
	}
	q.stats.pushes.Add(1)
	q.stats.observeLen(q.buf.Len())
	q.waiter.Notify(wait.NotEmpty)
}

// take removes the oldest item and wakes one producer. Caller holds mu.
func (q *Queue[T]) take() (T, bool) {
	v, ok := q.buf.Pop()
	if ok {
		q.stats.pops.Add(1)
		q.waiter.Notify(wait.NotFull)
	}
	return v, ok
}
