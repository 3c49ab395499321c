package boundedq

import (
	"log/slog"

	"github.com/randomizedcoder/go-prodcons/internal/buffer"
	"github.com/randomizedcoder/go-prodcons/internal/wait"
)

type options struct {
	policy wait.Policy
	kind   buffer.Kind
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		policy: wait.Blocking(),
		kind:   buffer.KindRing,
		logger: slog.Default(),
	}
}

// Option configures a Queue.
type Option func(*options)

// WithPolicy selects how Push and Pop wait. Defaults to wait.Blocking().
func WithPolicy(p wait.Policy) Option {
	return func(o *options) {
		if p != nil {
			o.policy = p
		}
	}
}

// WithBackend selects the storage backend. Defaults to buffer.KindRing.
func WithBackend(k buffer.Kind) Option {
	return func(o *options) {
		if k != "" {
			o.kind = k
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
