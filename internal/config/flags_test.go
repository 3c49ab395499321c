package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestFlags_OnlySetFlagsOverride(t *testing.T) {
	fs := newFlagSet()
	f := RegisterFlags(fs, true)
	if err := fs.Parse([]string{"-variant", "polling", "-size", "3", "-poll", "0s", "-v"}); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	cfg.Items = 500 // as if read from a file
	if err := f.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if cfg.Variant != "polling" || cfg.Capacity != 3 {
		t.Errorf("flags did not apply: %+v", cfg)
	}
	if cfg.Items != 500 {
		t.Errorf("unset -n overrode the file value: items=%d", cfg.Items)
	}
	if cfg.PollInterval != 0 {
		t.Errorf("expected poll 0, got %s", cfg.PollInterval)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected -v to select debug, got %q", cfg.LogLevel)
	}
	if time.Duration(cfg.ConsumeDelay) != 15*time.Millisecond {
		t.Errorf("expected default consume delay, got %s", cfg.ConsumeDelay)
	}
}

func TestFlags_WithoutVariant(t *testing.T) {
	fs := newFlagSet()
	RegisterFlags(fs, false)
	if fs.Lookup("variant") != nil {
		t.Error("expected no -variant flag")
	}
	if err := fs.Parse([]string{"-variant", "broken"}); err == nil {
		t.Error("expected -variant to be rejected")
	}
}

func TestFlags_Invalid(t *testing.T) {
	fs := newFlagSet()
	f := RegisterFlags(fs, true)
	if err := fs.Parse([]string{"-consumers", "0"}); err != nil {
		t.Fatal(err)
	}
	if err := f.Apply(Default()); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestFlags_ProducerPoll(t *testing.T) {
	fs := newFlagSet()
	f := RegisterFlags(fs, true)
	if err := fs.Parse([]string{"-producer-poll", "-1ns", "-poll", "2ms"}); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := f.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if time.Duration(cfg.ProducerPollInterval) != -time.Nanosecond {
		t.Errorf("expected -1ns, got %s", cfg.ProducerPollInterval)
	}
	if time.Duration(cfg.PollInterval) != 2*time.Millisecond {
		t.Errorf("expected 2ms, got %s", cfg.PollInterval)
	}
}
