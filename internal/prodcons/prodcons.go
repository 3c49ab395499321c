// Package prodcons runs one producer and a set of consumers against one of the
// three queue postures and reports what each consumer received.
//
// The variants are the three classic steps of the producer/consumer exercise:
//   - Broken: unsync.Racy, no synchronization (intentionally incorrect)
//   - Polling: boundedq with the polling wait policy (correct, wasteful)
//   - Blocking: boundedq with condition variables (correct, efficient)
//
// The producer pushes 1..Items, then signals done. Consumers pop until
// end-of-stream. The report checks the received items for loss, duplication
// and ordering, and records how the queue length and wait counters evolved.
package prodcons

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/randomizedcoder/go-prodcons/internal/buffer"
	"github.com/randomizedcoder/go-prodcons/internal/tick"
	"github.com/randomizedcoder/go-prodcons/internal/wait"
)

// Variant selects the queue posture.
type Variant string

const (
	Broken   Variant = "broken"
	Polling  Variant = "polling"
	Blocking Variant = "blocking"
)

// Variants lists all variants in escalating order of correctness.
var Variants = []Variant{Broken, Polling, Blocking}

var (
	// ErrUnknownVariant is returned for a variant name not in Variants.
	ErrUnknownVariant = errors.New("prodcons: unknown variant")

	// ErrInvalidConfig is returned by Run for an unusable Config.
	ErrInvalidConfig = errors.New("prodcons: invalid config")
)

// ParseVariant maps a name to a Variant. The empty string selects Blocking.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return Blocking, nil
	}
	v := Variant(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Variants {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Correct reports whether the variant is expected to deliver every item
// exactly once.
func (v Variant) Correct() bool {
	return v != Broken
}

// Defaults follow the classic exercise: 50 items through a buffer of 10, a
// producer that takes 10ms per item and a consumer that takes 15ms.
const (
	DefaultItems          = 50
	DefaultCapacity       = 10
	DefaultConsumers      = 1
	DefaultProduceDelay   = 10 * time.Millisecond
	DefaultConsumeDelay   = 15 * time.Millisecond
	DefaultSampleInterval = time.Millisecond
)

// Config holds run parameters.
type Config struct {
	// Variant is the queue posture. Defaults to Blocking.
	Variant Variant

	// Items is the number of items produced, valued 1..Items.
	Items int

	// Capacity is the queue capacity.
	Capacity int

	// Consumers is the number of consumer goroutines.
	Consumers int

	// ProduceDelay is slept before each push (simulated work). Zero disables.
	ProduceDelay time.Duration

	// ConsumeDelay is slept after each pop, outside any lock. Zero disables.
	ConsumeDelay time.Duration

	// PollInterval is the pause of the Polling variant between checks, for
	// consumers and, unless ProducerPollInterval is set, producers.
	// Zero or less spins. Defaults to wait.DefaultPollInterval when unset
	// and PollSpin is false.
	PollInterval time.Duration

	// PollSpin makes a zero PollInterval mean "spin" rather than "default".
	PollSpin bool

	// ProducerPollInterval overrides PollInterval for a producer waiting on a
	// full queue. Zero uses PollInterval; negative spins. The classic mutex
	// demo spins its producer and sleeps only the consumer, which is
	// ProducerPollInterval < 0 with PollInterval = 1ms.
	ProducerPollInterval time.Duration

	// Backend is the storage backend for Polling and Blocking.
	Backend buffer.Kind

	// SampleInterval is how often the monitor samples the queue length.
	// Negative disables sampling.
	SampleInterval time.Duration

	// ProgressInterval is how often the producer logs progress.
	// Zero disables progress logging.
	ProgressInterval time.Duration

	// ProgressTicker selects the ticker implementation for progress checks.
	ProgressTicker tick.Kind

	// Logger is used for structured output. If nil, slog.Default() is used.
	Logger *slog.Logger
}

// Default returns the classic exercise configuration for the given variant.
func Default(v Variant) Config {
	cfg := Config{
		Variant:      v,
		ProduceDelay: DefaultProduceDelay,
		ConsumeDelay: DefaultConsumeDelay,
	}
	return cfg.withDefaults()
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.Variant == "" {
		out.Variant = Blocking
	}
	if out.Items == 0 {
		out.Items = DefaultItems
	}
	if out.Capacity == 0 {
		out.Capacity = DefaultCapacity
	}
	if out.Consumers == 0 {
		out.Consumers = DefaultConsumers
	}
	if out.PollInterval == 0 && !out.PollSpin {
		out.PollInterval = wait.DefaultPollInterval
	}
	if out.Backend == "" {
		out.Backend = buffer.KindRing
	}
	if out.SampleInterval == 0 {
		out.SampleInterval = DefaultSampleInterval
	}
	if out.ProgressTicker == "" {
		out.ProgressTicker = tick.KindAtomic
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return out
}

func (c *Config) validate() error {
	if _, err := ParseVariant(string(c.Variant)); err != nil {
		return err
	}
	switch {
	case c.Items < 0:
		return fmt.Errorf("%w: items must be >= 0, got %d", ErrInvalidConfig, c.Items)
	case c.Capacity < 1:
		return fmt.Errorf("%w: capacity must be >= 1, got %d", ErrInvalidConfig, c.Capacity)
	case c.Consumers < 1:
		return fmt.Errorf("%w: consumers must be >= 1, got %d", ErrInvalidConfig, c.Consumers)
	case c.ProduceDelay < 0 || c.ConsumeDelay < 0:
		return fmt.Errorf("%w: delays must be >= 0", ErrInvalidConfig)
	}
	if _, err := buffer.ParseKind(string(c.Backend)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
