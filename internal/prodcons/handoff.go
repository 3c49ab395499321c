package prodcons

import (
	"context"
	"runtime"
	"time"

	"github.com/randomizedcoder/go-prodcons/internal/boundedq"
	"github.com/randomizedcoder/go-prodcons/internal/unsync"
	"github.com/randomizedcoder/go-prodcons/internal/wait"
)

// handoff is the queue as seen by the producer and consumer loops.
type handoff interface {
	// push enqueues v. accepted is false when the item was dropped.
	push(ctx context.Context, v int) (accepted bool, err error)

	// pop dequeues one item, or returns boundedq.ErrDone at end-of-stream.
	pop(ctx context.Context) (int, error)

	// done signals that the producer has finished.
	done()

	length() int
	stats() boundedq.Stats
}

func newHandoff(cfg Config) (handoff, error) {
	switch cfg.Variant {
	case Broken:
		return &racyHandoff{q: unsync.New[int](cfg.Capacity)}, nil
	case Polling, Blocking:
		policy := wait.Blocking()
		if cfg.Variant == Polling {
			policy = wait.PollingSplit(cfg.producerPoll(), cfg.PollInterval)
		}
		q, err := boundedq.New[int](cfg.Capacity,
			boundedq.WithPolicy(policy),
			boundedq.WithBackend(cfg.Backend),
			boundedq.WithLogger(cfg.Logger),
		)
		if err != nil {
			return nil, err
		}
		return &queueHandoff{q: q}, nil
	default:
		return nil, ErrUnknownVariant
	}
}

// producerPoll resolves ProducerPollInterval against PollInterval.
func (c *Config) producerPoll() time.Duration {
	switch {
	case c.ProducerPollInterval < 0:
		return 0
	case c.ProducerPollInterval == 0:
		return c.PollInterval
	default:
		return c.ProducerPollInterval
	}
}

type queueHandoff struct {
	q *boundedq.Queue[int]
}

func (h *queueHandoff) push(ctx context.Context, v int) (bool, error) {
	if err := h.q.Push(ctx, v); err != nil {
		return false, err
	}
	return true, nil
}

func (h *queueHandoff) pop(ctx context.Context) (int, error) { return h.q.Pop(ctx) }
func (h *queueHandoff) done()                                 { h.q.SignalDone() }
func (h *queueHandoff) length() int                           { return h.q.Len() }
func (h *queueHandoff) stats() boundedq.Stats                 { return h.q.Stats() }

// racyHandoff drives unsync.Racy the way the broken demo does: the producer
// drops items that do not fit, consumers spin on "!done || !empty".
type racyHandoff struct {
	q      *unsync.Racy[int]
	pushes uint64 // producer goroutine only
}

func (h *racyHandoff) push(ctx context.Context, v int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if !h.q.TryPush(v) {
		return false, nil
	}
	h.pushes++
	return true, nil
}

func (h *racyHandoff) pop(ctx context.Context) (int, error) {
	for !h.q.Done() || h.q.Len() > 0 {
		if v, ok := h.q.TryPop(); ok {
			return v, nil
		}
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		runtime.Gosched()
	}
	return 0, boundedq.ErrDone
}

func (h *racyHandoff) done()       { h.q.SignalDone() }
func (h *racyHandoff) length() int { return h.q.Len() }

// stats only reports what the producer counted. The racy queue keeps no
// consumer-side counters worth trusting.
func (h *racyHandoff) stats() boundedq.Stats {
	return boundedq.Stats{Pushes: h.pushes}
}
