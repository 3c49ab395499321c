package prodcons

import "testing"

func TestReport_Tally(t *testing.T) {
	testCases := []struct {
		name       string
		items      int
		received   [][]int
		duplicates int
		lost       int
		inOrder    bool
	}{
		{"exact", 4, [][]int{{1, 2, 3, 4}}, 0, 0, true},
		{"split", 4, [][]int{{1, 3}, {2, 4}}, 0, 0, true},
		{"lost", 4, [][]int{{1, 4}}, 0, 2, true},
		{"duplicate", 3, [][]int{{1, 2}, {2, 3}}, 1, 0, true},
		{"reordered", 3, [][]int{{2, 1, 3}}, 0, 0, false},
		{"out of range", 2, [][]int{{0, 1, 2, 9}}, 2, 0, true},
		{"empty", 2, [][]int{{}, {}}, 0, 2, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := &Report{Items: tc.items}
			r.tally(tc.received)

			if r.Duplicates != tc.duplicates {
				t.Errorf("expected %d duplicates, got %d", tc.duplicates, r.Duplicates)
			}
			if r.Lost != tc.lost {
				t.Errorf("expected %d lost, got %d", tc.lost, r.Lost)
			}
			if r.InOrder != tc.inOrder {
				t.Errorf("expected in_order=%v, got %v", tc.inOrder, r.InOrder)
			}
			if len(r.PerConsumer) != len(tc.received) {
				t.Errorf("expected %d per-consumer counts, got %d", len(tc.received), len(r.PerConsumer))
			}
		})
	}
}

func TestReport_Correct(t *testing.T) {
	ok := Report{Items: 2, Capacity: 2, InOrder: true, MaxLen: 2}
	if !ok.Correct() {
		t.Error("expected a clean report to be correct")
	}

	over := ok
	over.MaxLen = 3
	if over.Correct() {
		t.Error("expected MaxLen above capacity to be incorrect")
	}

	dropped := ok
	dropped.Dropped = 1
	if dropped.Correct() {
		t.Error("expected dropped items to be incorrect")
	}
}

func TestSampler_Disabled(t *testing.T) {
	s := newSampler(func() int { return 7 }, -1)
	s.start()
	maxLen, samples := s.halt()
	if maxLen != 0 || samples != 0 {
		t.Errorf("expected no samples, got max=%d samples=%d", maxLen, samples)
	}
}
