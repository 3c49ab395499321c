package prodcons

import (
	"sync"
	"time"
)

// sampler polls the queue length on a fixed interval from its own goroutine
// and keeps the maximum it sees. It is an outside observer: it checks the
// capacity bound at independent instants rather than trusting the queue's
// own high-water mark.
type sampler struct {
	length   func() int
	interval time.Duration

	stop chan struct{}
	wg   sync.WaitGroup

	max     int // sampler goroutine only until halt
	samples int
}

func newSampler(length func() int, interval time.Duration) *sampler {
	return &sampler{
		length:   length,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// start launches the sampling goroutine. A non-positive interval disables it.
func (s *sampler) start() {
	if s.interval <= 0 {
		return
	}
	s.wg.Add(1)
	go s.run()
}

func (s *sampler) run() {
	defer s.wg.Done()
	t := time.NewTicker(s.interval)
	defer t.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-t.C:
			s.observe()
		}
	}
}

func (s *sampler) observe() {
	n := s.length()
	s.samples++
	if n > s.max {
		s.max = n
	}
}

// halt stops sampling and returns the maximum length seen and the number of
// samples taken.
func (s *sampler) halt() (maxLen, samples int) {
	close(s.stop)
	s.wg.Wait()
	return s.max, s.samples
}
