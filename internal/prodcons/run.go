package prodcons

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/randomizedcoder/go-prodcons/internal/boundedq"
	"github.com/randomizedcoder/go-prodcons/internal/cancel"
	"github.com/randomizedcoder/go-prodcons/internal/tick"
)

// Run executes one producer/consumer run and returns its report.
//
// It returns when the producer has signalled done and every consumer has
// drained the queue, or when ctx ends. The first worker error cancels the
// remaining workers through a cancel.Scope and is returned wrapped.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	h, err := newHandoff(cfg)
	if err != nil {
		return nil, fmt.Errorf("prodcons: %s: %w", cfg.Variant, err)
	}

	stop := cancel.NewScope(ctx)
	defer stop.Cancel()
	runCtx := stop.Context()

	rep := &Report{
		ID:        uuid.NewString(),
		Variant:   cfg.Variant,
		Items:     cfg.Items,
		Capacity:  cfg.Capacity,
		Consumers: cfg.Consumers,
	}
	if cfg.Variant != Broken {
		rep.Backend = string(cfg.Backend)
	}

	log := cfg.Logger.With("run", rep.ID, "variant", cfg.Variant)
	log.Info("prodcons: run starting",
		"items", cfg.Items,
		"capacity", cfg.Capacity,
		"consumers", cfg.Consumers,
		"backend", rep.Backend,
	)

	mon := newSampler(h.length, cfg.SampleInterval)
	mon.start()

	start := time.Now()
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		produced, dropped, err := produce(runCtx, h, cfg, log)
		rep.Produced, rep.Dropped = produced, dropped
		if err != nil {
			stop.Fail(fmt.Errorf("producer: %w", err))
		}
	}()

	received := make([][]int, cfg.Consumers)
	for i := range received {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items, err := consume(runCtx, h, cfg, log, i+1)
			received[i] = items
			if err != nil {
				stop.Fail(fmt.Errorf("consumer %d: %w", i+1, err))
			}
		}()
	}

	wg.Wait()
	rep.Duration = time.Since(start)
	rep.SampledMaxLen, rep.Samples = mon.halt()

	if err := stop.Failure(); err != nil {
		log.Warn("prodcons: run aborted", "error", err)
		return nil, fmt.Errorf("prodcons: %s run: %w", cfg.Variant, err)
	}

	rep.tally(received)
	rep.Queue = h.stats()
	rep.FinalLen = h.length()
	rep.MaxLen = max(rep.Queue.HighWater, rep.SampledMaxLen)

	log.Info("prodcons: run finished",
		"consumed", rep.Consumed,
		"lost", rep.Lost,
		"duplicates", rep.Duplicates,
		"max_len", rep.MaxLen,
		"wakeups", rep.Queue.Wakeups,
		"duration", rep.Duration,
	)
	if cfg.Variant.Correct() && !rep.Correct() {
		log.Error("prodcons: synchronized variant delivered incorrectly",
			"lost", rep.Lost,
			"duplicates", rep.Duplicates,
			"in_order", rep.InOrder,
		)
	}
	return rep, nil
}

// produce pushes 1..Items and always signals done on the way out.
func produce(ctx context.Context, h handoff, cfg Config, log *slog.Logger) (produced, dropped int, err error) {
	defer h.done()

	progress := tick.New(cfg.ProgressTicker, cfg.ProgressInterval)
	defer progress.Stop()

	for i := 1; i <= cfg.Items; i++ {
		if err := sleep(ctx, cfg.ProduceDelay); err != nil {
			return produced, dropped, err
		}
		accepted, err := h.push(ctx, i)
		if err != nil {
			return produced, dropped, err
		}
		if accepted {
			produced++
		} else {
			dropped++
		}
		if progress.Tick() {
			log.Debug("prodcons: producer progress",
				"produced", produced,
				"dropped", dropped,
				"len", h.length(),
			)
		}
	}
	return produced, dropped, nil
}

// consume pops until end-of-stream, recording every item received.
func consume(ctx context.Context, h handoff, cfg Config, log *slog.Logger, id int) ([]int, error) {
	items := make([]int, 0, cfg.Items/cfg.Consumers+1)
	for {
		v, err := h.pop(ctx)
		if errors.Is(err, boundedq.ErrDone) {
			log.Debug("prodcons: consumer finished", "consumer", id, "consumed", len(items))
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, v)
		if err := sleep(ctx, cfg.ConsumeDelay); err != nil {
			return items, err
		}
	}
}

// sleep waits for d or until ctx ends.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Compare runs the same workload once per variant, in order.
//
// If a run fails Compare stops and returns the reports collected so far
// together with the error.
func Compare(ctx context.Context, cfg Config, variants ...Variant) ([]*Report, error) {
	if len(variants) == 0 {
		variants = Variants
	}
	reports := make([]*Report, 0, len(variants))
	for _, v := range variants {
		c := cfg
		c.Variant = v
		rep, err := Run(ctx, c)
		if err != nil {
			return reports, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}
