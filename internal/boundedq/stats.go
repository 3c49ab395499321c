package boundedq

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// counters are written under the queue lock but read without it, so they are
// atomics. Producer-side and consumer-side counters sit on separate cache
// lines.
type counters struct {
	pushes        atomic.Uint64
	producerWaits atomic.Uint64
	highWater     atomic.Int64

	_ cpu.CacheLinePad

	pops          atomic.Uint64
	consumerWaits atomic.Uint64
}

// observeLen records n if it is the largest length seen. Caller holds the
// queue lock, so a plain compare-then-store is enough.
func (c *counters) observeLen(n int) {
	if int64(n) > c.highWater.Load() {
		c.highWater.Store(int64(n))
	}
}

// Stats is a snapshot of queue activity.
type Stats struct {
	Pushes        uint64 `json:"pushes" yaml:"pushes" msgpack:"pushes"`
	Pops          uint64 `json:"pops" yaml:"pops" msgpack:"pops"`
	ProducerWaits uint64 `json:"producer_waits" yaml:"producer_waits" msgpack:"producer_waits"`
	ConsumerWaits uint64 `json:"consumer_waits" yaml:"consumer_waits" msgpack:"consumer_waits"`
	Wakeups       uint64 `json:"wakeups" yaml:"wakeups" msgpack:"wakeups"`
	HighWater     int    `json:"high_water" yaml:"high_water" msgpack:"high_water"`
}

// Stats returns a snapshot of the queue counters.
//
// ProducerWaits and ConsumerWaits count calls that found the queue full or
// empty and had to wait. Wakeups counts how often a waiting caller resumed to
// re-check; for the polling policy this grows with idle time.
func (q *Queue[T]) Stats() Stats {
	return Stats{
		Pushes:        q.stats.pushes.Load(),
		Pops:          q.stats.pops.Load(),
		ProducerWaits: q.stats.producerWaits.Load(),
		ConsumerWaits: q.stats.consumerWaits.Load(),
		Wakeups:       q.waiter.Wakeups(),
		HighWater:     int(q.stats.highWater.Load()),
	}
}
