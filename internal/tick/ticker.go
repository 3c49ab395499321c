package tick

import "time"

// StdTicker polls a time.Ticker with a non-blocking receive. It pays a
// channel operation per call and keeps a runtime timer alive until Stop.
type StdTicker struct {
	t      *time.Ticker
	period time.Duration
}

func NewTicker(interval time.Duration) *StdTicker {
	return &StdTicker{t: time.NewTicker(interval), period: interval}
}

func (s *StdTicker) Tick() bool {
	select {
	case <-s.t.C:
		return true
	default:
	}
	return false
}

// Reset restarts the interval. A tick that fired before Reset is discarded.
func (s *StdTicker) Reset() { s.t.Reset(s.period) }

func (s *StdTicker) Stop() { s.t.Stop() }

func (s *StdTicker) Interval() time.Duration { return s.period }
