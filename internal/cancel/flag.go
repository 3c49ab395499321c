package cancel

import "sync/atomic"

// Flag is a one-way "finished" marker read from spin loops.
type Flag struct {
	set atomic.Bool
}

// NewFlag returns a lowered Flag.
func NewFlag() *Flag { return &Flag{} }

// Done reports whether the flag is raised.
func (f *Flag) Done() bool { return f.set.Load() }

// Cancel raises the flag.
func (f *Flag) Cancel() { f.set.Store(true) }

// Raise raises the flag and reports whether this call was the one that did.
func (f *Flag) Raise() bool { return f.set.CompareAndSwap(false, true) }

// Reset lowers the flag. Only safe while no other goroutine uses it.
func (f *Flag) Reset() { f.set.Store(false) }
