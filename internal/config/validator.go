package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/randomizedcoder/go-prodcons/internal/buffer"
	"github.com/randomizedcoder/go-prodcons/internal/prodcons"
	"github.com/randomizedcoder/go-prodcons/internal/tick"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks if the configuration is valid
func Validate(cfg *Config) error {
	if _, err := prodcons.ParseVariant(cfg.Variant); err != nil {
		return fmt.Errorf("%w: variant: %w", ErrInvalid, err)
	}

	if cfg.Items < 1 {
		return fmt.Errorf("%w: items must be > 0, got %d", ErrInvalid, cfg.Items)
	}
	if cfg.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be > 0, got %d", ErrInvalid, cfg.Capacity)
	}
	if cfg.Consumers < 1 {
		return fmt.Errorf("%w: consumers must be > 0, got %d", ErrInvalid, cfg.Consumers)
	}

	if cfg.ProduceDelay < 0 {
		return fmt.Errorf("%w: produce_delay must be >= 0, got %s", ErrInvalid, cfg.ProduceDelay)
	}
	if cfg.ConsumeDelay < 0 {
		return fmt.Errorf("%w: consume_delay must be >= 0, got %s", ErrInvalid, cfg.ConsumeDelay)
	}
	if cfg.ProgressInterval < 0 {
		return fmt.Errorf("%w: progress_interval must be >= 0, got %s", ErrInvalid, cfg.ProgressInterval)
	}

	if _, err := buffer.ParseKind(cfg.Backend); err != nil {
		return fmt.Errorf("%w: backend: %w", ErrInvalid, err)
	}

	switch tick.Kind(cfg.ProgressTicker) {
	case "", tick.KindStd, tick.KindBatch, tick.KindAtomic:
	default:
		return fmt.Errorf("%w: progress_ticker must be std, batch or atomic, got %q", ErrInvalid, cfg.ProgressTicker)
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	err := lvl.UnmarshalText([]byte(strings.TrimSpace(s)))
	return lvl, err
}
