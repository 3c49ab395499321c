// Package cancel carries "stop" to the goroutines of a run.
//
// Two shapes are needed:
//   - Scope: the run-wide abort. Workers parked inside Push or Pop only see a
//     context, so a Scope is a context plus the first failure that ended it.
//   - Flag: the end-of-stream marker of the unsynchronized queue, polled from
//     spin loops. It is a single atomic.Bool.
package cancel

// Canceler is the part both shapes share.
type Canceler interface {
	// Done reports whether the stop has been triggered. It never blocks.
	Done() bool

	// Cancel triggers the stop. Calling it again is a no-op.
	Cancel()
}

var (
	_ Canceler = (*Scope)(nil)
	_ Canceler = (*Flag)(nil)
)
