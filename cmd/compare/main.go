// Command compare runs the broken, polling and blocking variants over the same
// workload and prints them side by side.
//
// Usage:
//
//	go run ./cmd/compare
//	go run ./cmd/compare -n 200 -size 4 -consumers 2 -backend list
//	go run ./cmd/compare -config run.yaml -format yaml
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
	overrides := config.RegisterFlags(flag.CommandLine, false)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fatal(err)
		}
		cfg = loaded
	}
	if err := overrides.Apply(cfg); err != nil {
		fatal(err)
	}
	f, err := report.ParseFormat(*format)
	if err != nil {
		fatal(err)
	}

	// Per-run logs go to stderr at warn unless -v or log_level asks for more,
	// so the comparison stays readable.
	level := slog.LevelWarn
	if cfg.Level() < slog.LevelInfo {
		level = cfg.Level()
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if f == report.FormatText {
		fmt.Printf("Producer/consumer comparison (%d items, capacity=%d, consumers=%d, backend=%s)\n",
			cfg.Items, cfg.Capacity, cfg.Consumers, cfg.Backend)
		fmt.Printf("Produce %s/item, consume %s/item, poll every %s\n",
			cfg.ProduceDelay, cfg.ConsumeDelay, cfg.PollInterval)
		fmt.Println("─────────────────────────────────────────────────")
	}

	reports, err := prodcons.Compare(ctx, cfg.RunConfig(logger))
	if err != nil {
		fatal(err)
	}
	if err := report.Encode(os.Stdout, f, reports); err != nil {
		fatal(err)
	}

	if f == report.FormatText {
		summarize(reports)
	}
}

func summarize(reports []*prodcons.Report) {
	byVariant := make(map[prodcons.Variant]*prodcons.Report, len(reports))
	for _, r := range reports {
		byVariant[r.Variant] = r
	}

	fmt.Println("\nObservations:")
	if r := byVariant[prodcons.Broken]; r != nil {
		if r.Correct() {
			fmt.Println("  broken:   delivered correctly this time; the race is still there, run it again")
		} else {
			fmt.Printf("  broken:   lost %d, duplicated %d, dropped %d (no synchronization)\n",
				r.Lost, r.Duplicates, r.Dropped)
		}
	}

	poll, block := byVariant[prodcons.Polling], byVariant[prodcons.Blocking]
	if poll != nil {
		fmt.Printf("  polling:  correct=%t with %d wakeups (busy waiting)\n", poll.Correct(), poll.Queue.Wakeups)
	}
	if block != nil {
		fmt.Printf("  blocking: correct=%t with %d wakeups (condition variables)\n", block.Correct(), block.Queue.Wakeups)
	}
	if poll != nil && block != nil && block.Queue.Wakeups > 0 {
		fmt.Printf("\n  Polling woke up %.1fx as often as blocking\n",
			float64(poll.Queue.Wakeups)/float64(block.Queue.Wakeups))
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "compare: %v\n", err)
	os.Exit(1)
}
