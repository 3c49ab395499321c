// Package config loads run configuration from YAML.
//
// A file only needs the keys it changes; everything else keeps the classic
// exercise defaults from Default.
//
//	variant: polling
//	items: 200
//	capacity: 8
//	consumers: 2
//	produce_delay: 2ms
//	consume_delay: 5ms
//	poll_interval: 500us
//	backend: list
//	log_level: debug
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/go-prodcons/internal/buffer"
	"github.com/randomizedcoder/go-prodcons/internal/prodcons"
	"github.com/randomizedcoder/go-prodcons/internal/tick"
	"github.com/randomizedcoder/go-prodcons/internal/wait"
)

// Config is the YAML shape of a run.
type Config struct {
	Variant   string `yaml:"variant"`   // broken, polling, blocking
	Items     int    `yaml:"items"`     // values 1..items are produced
	Capacity  int    `yaml:"capacity"`  // queue capacity
	Consumers int    `yaml:"consumers"` // consumer goroutines

	ProduceDelay Duration `yaml:"produce_delay"`
	ConsumeDelay Duration `yaml:"consume_delay"`
	PollInterval Duration `yaml:"poll_interval"` // 0 spins

	// ProducerPollInterval is the producer's pause on a full queue under
	// polling: 0 follows poll_interval, negative spins.
	ProducerPollInterval Duration `yaml:"producer_poll_interval"`

	Backend string `yaml:"backend"` // ring, channel, list, sharded

	SampleInterval   Duration `yaml:"sample_interval"`   // negative disables
	ProgressInterval Duration `yaml:"progress_interval"` // 0 disables
	ProgressTicker   string   `yaml:"progress_ticker"`   // std, batch, atomic

	LogLevel string `yaml:"log_level"` // debug, info, warn, error
}

// Duration is a time.Duration written as a Go duration string ("15ms").
type Duration time.Duration

// UnmarshalYAML accepts duration strings. A bare integer is read as
// nanoseconds, the way time.Duration counts; any other bare number is an
// error rather than being truncated.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		if node.ShortTag() != "!!int" {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		var n int64
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		parsed = time.Duration(n)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) String() string { return time.Duration(d).String() }

// Default returns the classic exercise workload.
func Default() *Config {
	return &Config{
		Variant:          string(prodcons.Blocking),
		Items:            prodcons.DefaultItems,
		Capacity:         prodcons.DefaultCapacity,
		Consumers:        prodcons.DefaultConsumers,
		ProduceDelay:     Duration(prodcons.DefaultProduceDelay),
		ConsumeDelay:     Duration(prodcons.DefaultConsumeDelay),
		PollInterval:     Duration(wait.DefaultPollInterval),
		Backend:          string(buffer.KindRing),
		SampleInterval:   Duration(prodcons.DefaultSampleInterval),
		ProgressInterval: Duration(tick.DefaultInterval),
		ProgressTicker:   string(tick.KindAtomic),
		LogLevel:         "info",
	}
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level returns the configured log level. Unknown names fall back to Info;
// Validate rejects them first.
func (c *Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// RunConfig converts c into a prodcons.Config. c must have passed Validate.
func (c *Config) RunConfig(logger *slog.Logger) prodcons.Config {
	variant, _ := prodcons.ParseVariant(c.Variant)
	backend, _ := buffer.ParseKind(c.Backend)
	return prodcons.Config{
		Variant:              variant,
		Items:                c.Items,
		Capacity:             c.Capacity,
		Consumers:            c.Consumers,
		ProduceDelay:         time.Duration(c.ProduceDelay),
		ConsumeDelay:         time.Duration(c.ConsumeDelay),
		PollInterval:         time.Duration(c.PollInterval),
		PollSpin:             c.PollInterval <= 0,
		ProducerPollInterval: time.Duration(c.ProducerPollInterval),
		Backend:              backend,
		SampleInterval:       time.Duration(c.SampleInterval),
		ProgressInterval:     time.Duration(c.ProgressInterval),
		ProgressTicker:       tick.Kind(c.ProgressTicker),
		Logger:               logger,
	}
}
