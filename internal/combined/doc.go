// Package combined benchmarks the pieces of a producer/consumer run together:
// the per-item cancel and progress checks of the producer loop, and whole
// handoffs through boundedq for every wait policy and storage backend.
//
// Isolated micro-benchmarks live next to each package. These capture the
// cost a run actually pays, including lock contention and wakeups.
package combined
