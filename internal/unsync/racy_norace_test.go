//go:build !race

package unsync_test

import (
	"sync"
	"testing"

	"github.com/randomizedcoder/go-prodcons/internal/unsync"
)

// TestRacy_ConcurrentNoPanic drives Racy the way the broken demo does: one
// producer, two spinning consumers. Loss and duplication are expected and
// only logged; the queue must not panic or hang.
func TestRacy_ConcurrentNoPanic(t *testing.T) {
	r := unsync.New[int](8)
	const count = 20000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer r.SignalDone()
		for i := 1; i <= count; i++ {
			r.TryPush(i) // dropped when full
		}
	}()

	received := make([]int, 2)
	for c := range received {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !r.Done() || r.Len() > 0 {
				if _, ok := r.TryPop(); ok {
					received[c]++
				}
			}
		}()
	}
	wg.Wait()

	t.Logf("produced %d, consumed %d + %d (loss and duplication are expected)",
		count, received[0], received[1])
	if r.Len() < 0 || r.Len() > r.Cap() {
		t.Errorf("Len() = %d outside [0, %d]", r.Len(), r.Cap())
	}
}
