package cancel

import (
	"context"
	"sync"
)

// Scope is a cancellable context that remembers why it was cancelled.
//
// The first call to Fail wins: its error is kept and becomes the context
// cause, later failures (usually workers reporting the cancellation itself)
// are discarded.
type Scope struct {
	ctx    context.Context
	cancel context.CancelCauseFunc

	mu      sync.Mutex
	failure error
}

// NewScope derives a Scope from parent. Ending parent ends the Scope, but
// does not record a failure.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancelCause(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context returns the context to hand to blocking calls.
func (s *Scope) Context() context.Context { return s.ctx }

// Done reports whether the context has ended, without blocking.
func (s *Scope) Done() bool {
	select {
	case <-s.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel ends the scope without recording a failure.
func (s *Scope) Cancel() { s.cancel(nil) }

// Fail records err and ends the scope. It reports whether err was the first
// failure. A nil err only cancels.
func (s *Scope) Fail(err error) bool {
	if err == nil {
		s.Cancel()
		return false
	}

	s.mu.Lock()
	first := s.failure == nil
	if first {
		s.failure = err
	}
	s.mu.Unlock()

	s.cancel(err)
	return first
}

// Failure returns the first error passed to Fail, or nil.
func (s *Scope) Failure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

// Err returns the context error: nil while running, context.Canceled after
// Cancel or Fail, or the parent's error.
func (s *Scope) Err() error { return s.ctx.Err() }

// Cause returns context.Cause of the scope's context.
func (s *Scope) Cause() error { return context.Cause(s.ctx) }
