package tick

import _ "unsafe" // go:linkname

// nanotime is the runtime's monotonic clock. Reading it does not build a
// time.Time, which matters when it is read once per item.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64
