package tick

import "time"

// BatchTicker reads the clock once every N calls.
//
// The producer calls Tick once per item, so with every=64 the clock is read
// once per 64 items. When items are slow the tick is late: at 15ms an item a
// batch of 64 spans almost a second.
//
// Not safe for concurrent use.
type BatchTicker struct {
	period int64
	every  int
	left   int
	next   int64
}

// NewBatch returns a BatchTicker checking the clock every N calls. every
// below 1 is treated as 1.
func NewBatch(interval time.Duration, every int) *BatchTicker {
	b := &BatchTicker{period: int64(interval), every: max(every, 1)}
	b.Reset()
	return b
}

func (b *BatchTicker) Tick() bool {
	b.left--
	if b.left > 0 {
		return false
	}
	b.left = b.every

	now := nanotime()
	if now < b.next {
		return false
	}
	b.next = now + b.period
	return true
}

// Reset restarts both the call countdown and the interval.
func (b *BatchTicker) Reset() {
	b.left = b.every
	b.next = nanotime() + b.period
}

func (b *BatchTicker) Stop() {}

// Every returns the number of calls between clock reads.
func (b *BatchTicker) Every() int { return b.every }

func (b *BatchTicker) Interval() time.Duration { return time.Duration(b.period) }
