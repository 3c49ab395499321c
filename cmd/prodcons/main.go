// Command prodcons runs one producer/consumer variant and prints its report.
//
// Usage:
//
//	go run ./cmd/prodcons -variant blocking -n 50 -size 10
//	go run ./cmd/prodcons -variant polling -poll 500us -consumers 2 -format json
//	go run ./cmd/prodcons -config run.yaml -format msgpack -out run.bin
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/randomizedcoder/go-prodcons/internal/config"
	"github.com/randomizedcoder/go-prodcons/internal/prodcons"
	"github.com/randomizedcoder/go-prodcons/internal/report"
)

func main() {
	configPath := flag.String("config", "", "YAML config file")
	format := flag.String("format", "text", "output format: text, json, yaml or msgpack")
	out := flag.String("out", "", "write the report to this file instead of stdout")
	overrides := config.RegisterFlags(flag.CommandLine, true)
	flag.Parse()

	if err := run(*configPath, *format, *out, overrides); err != nil {
		fmt.Fprintf(os.Stderr, "prodcons: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, formatName, outPath string, overrides *config.Flags) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := overrides.Apply(cfg); err != nil {
		return err
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep, err := prodcons.Run(ctx, cfg.RunConfig(logger))
	if err != nil {
		return err
	}

	if err := writeReport(outPath, format, []*prodcons.Report{rep}); err != nil {
		return err
	}

	if rep.Variant.Correct() && !rep.Correct() {
		return fmt.Errorf("%s run %s delivered incorrectly", rep.Variant, rep.ID)
	}
	return nil
}

// writeReport encodes reps to path, or to stdout when path is empty. The
// file's close error is returned.
func writeReport(path string, format report.Format, reps []*prodcons.Report) error {
	if path == "" {
		return report.Encode(os.Stdout, format, reps)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := report.Encode(f, format, reps); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
