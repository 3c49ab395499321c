package config

import (
	"flag"
	"time"
)

// Flags binds command-line overrides for a Config.
type Flags struct {
	fs *flag.FlagSet

	variant   string
	items     int
	capacity  int
	consumers int
	produce   time.Duration
	consume   time.Duration
	poll      time.Duration
	prodPoll  time.Duration
	backend   string
	verbose   bool
}

// RegisterFlags defines the run flags on fs. The -variant flag is only
// defined when withVariant is true. Flag defaults mirror Default.
func RegisterFlags(fs *flag.FlagSet, withVariant bool) *Flags {
	d := Default()
	f := &Flags{fs: fs}
	if withVariant {
		fs.StringVar(&f.variant, "variant", d.Variant, "broken, polling or blocking")
	}
	fs.IntVar(&f.items, "n", d.Items, "number of items to produce")
	fs.IntVar(&f.capacity, "size", d.Capacity, "queue capacity")
	fs.IntVar(&f.consumers, "consumers", d.Consumers, "number of consumers")
	fs.DurationVar(&f.produce, "produce", time.Duration(d.ProduceDelay), "producer delay per item")
	fs.DurationVar(&f.consume, "consume", time.Duration(d.ConsumeDelay), "consumer delay per item")
	fs.DurationVar(&f.poll, "poll", time.Duration(d.PollInterval), "polling interval (0 spins)")
	fs.DurationVar(&f.prodPoll, "producer-poll", time.Duration(d.ProducerPollInterval), "producer polling interval (0 follows -poll, negative spins)")
	fs.StringVar(&f.backend, "backend", d.Backend, "queue storage: ring, channel, list or sharded")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	return f
}

// Apply copies the flags that were set on the command line into c and
// validates the result. Flags left at their defaults do not override values
// from a config file.
func (f *Flags) Apply(c *Config) error {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "variant":
			c.Variant = f.variant
		case "n":
			c.Items = f.items
		case "size":
			c.Capacity = f.capacity
		case "consumers":
			c.Consumers = f.consumers
		case "produce":
			c.ProduceDelay = Duration(f.produce)
		case "consume":
			c.ConsumeDelay = Duration(f.consume)
		case "poll":
			c.PollInterval = Duration(f.poll)
		case "producer-poll":
			c.ProducerPollInterval = Duration(f.prodPoll)
		case "backend":
			c.Backend = f.backend
		case "v":
			if f.verbose {
				c.LogLevel = "debug"
			}
		}
	})
	return Validate(c)
}
