package buffer_test

import (
	"errors"
	"testing"

	"github.com/randomizedcoder/go-prodcons/internal/buffer"
)

func newBuffer(t *testing.T, kind buffer.Kind, capacity int) buffer.Buffer[int] {
	t.Helper()
	b, err := buffer.New[int](kind, capacity)
	if err != nil {
		t.Fatalf("New(%s, %d): %v", kind, capacity, err)
	}
	return b
}

func testBuffer[T comparable](t *testing.T, b buffer.Buffer[T], val T, name string) {
	t.Helper()

	// Empty buffer returns false
	if _, ok := b.Pop(); ok {
		t.Errorf("%s: expected Pop() = false on empty buffer", name)
	}

	// Push succeeds
	if !b.Push(val) {
		t.Errorf("%s: expected Push() = true", name)
	}

	// Pop returns pushed value
	got, ok := b.Pop()
	if !ok {
		t.Errorf("%s: expected Pop() = true after Push()", name)
	}
	if got != val {
		t.Errorf("%s: expected %v, got %v", name, val, got)
	}

	// Buffer is empty again
	if _, ok := b.Pop(); ok {
		t.Errorf("%s: expected Pop() = false after draining", name)
	}
}

func TestBufferContract(t *testing.T) {
	for _, kind := range buffer.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			testBuffer(t, newBuffer(t, kind, 8), 42, string(kind))
		})
	}
}

func TestBuffer_Full(t *testing.T) {
	for _, kind := range buffer.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			b := newBuffer(t, kind, 2)
			if !b.Push(1) {
				t.Error("expected Push(1) = true")
			}
			if !b.Push(2) {
				t.Error("expected Push(2) = true")
			}
			if b.Push(3) {
				t.Error("expected Push(3) = false on full buffer")
			}
		})
	}
}

func TestBuffer_FIFO(t *testing.T) {
	for _, kind := range buffer.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			b := newBuffer(t, kind, 8)

			for i := 0; i < 5; i++ {
				if !b.Push(i) {
					t.Fatalf("expected Push(%d) = true", i)
				}
			}

			for i := 0; i < 5; i++ {
				got, ok := b.Pop()
				if !ok {
					t.Fatalf("expected Pop() = true for item %d", i)
				}
				if got != i {
					t.Errorf("FIFO violation: expected %d, got %d", i, got)
				}
			}
		})
	}
}

// TestBuffer_WrapAround cycles far more items than the capacity through each
// backend so head/tail wrap many times.
func TestBuffer_WrapAround(t *testing.T) {
	for _, kind := range buffer.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			b := newBuffer(t, kind, 3)
			next := 0
			for i := 0; i < 100; i++ {
				if !b.Push(i) {
					t.Fatalf("Push(%d) = false with Len() = %d", i, b.Len())
				}
				if b.Len() == 3 {
					got, _ := b.Pop()
					if got != next {
						t.Fatalf("FIFO violation: expected %d, got %d", next, got)
					}
					next++
				}
			}
			for b.Len() > 0 {
				got, _ := b.Pop()
				if got != next {
					t.Fatalf("FIFO violation: expected %d, got %d", next, got)
				}
				next++
			}
			if next != 100 {
				t.Errorf("expected 100 items out, got %d", next)
			}
		})
	}
}

func TestBuffer_LenCap(t *testing.T) {
	for _, kind := range buffer.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			b := newBuffer(t, kind, 8)

			if b.Len() != 0 {
				t.Errorf("expected Len() = 0, got %d", b.Len())
			}
			if b.Cap() != 8 {
				t.Errorf("expected Cap() = 8, got %d", b.Cap())
			}

			b.Push(1)
			b.Push(2)

			if b.Len() != 2 {
				t.Errorf("expected Len() = 2, got %d", b.Len())
			}
		})
	}
}

func TestRing_ExactCapacity(t *testing.T) {
	// Storage rounds 10 up to 16, the logical capacity must stay 10
	r := buffer.NewRing[int](10)
	if r.Cap() != 10 {
		t.Errorf("expected Cap() = 10, got %d", r.Cap())
	}
	for i := 0; i < 10; i++ {
		if !r.Push(i) {
			t.Fatalf("expected Push(%d) = true", i)
		}
	}
	if r.Push(10) {
		t.Error("expected Push() = false at logical capacity")
	}
}

func TestRing_MinimumCapacity(t *testing.T) {
	r := buffer.NewRing[int](0)
	if r.Cap() != 1 {
		t.Errorf("expected Cap() = 1 for capacity 0, got %d", r.Cap())
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := buffer.New[int](buffer.KindRing, 0); !errors.Is(err, buffer.ErrCapacity) {
		t.Errorf("expected ErrCapacity, got %v", err)
	}
	if _, err := buffer.New[int]("deque", 4); !errors.Is(err, buffer.ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	testCases := []struct {
		in      string
		want    buffer.Kind
		wantErr bool
	}{
		{"", buffer.KindRing, false},
		{"ring", buffer.KindRing, false},
		{"Channel", buffer.KindChannel, false},
		{" list ", buffer.KindList, false},
		{"sharded", buffer.KindSharded, false},
		{"stack", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := buffer.ParseKind(tc.in)
			if tc.wantErr {
				if !errors.Is(err, buffer.ErrUnknownKind) {
					t.Errorf("expected ErrUnknownKind, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
