package prodcons

import (
	"time"

	"github.com/randomizedcoder/go-prodcons/internal/boundedq"
)

// Report describes one run.
type Report struct {
	ID        string  `json:"id" yaml:"id" msgpack:"id"`
	Variant   Variant `json:"variant" yaml:"variant" msgpack:"variant"`
	Backend   string  `json:"backend,omitempty" yaml:"backend,omitempty" msgpack:"backend,omitempty"`
	Items     int     `json:"items" yaml:"items" msgpack:"items"`
	Capacity  int     `json:"capacity" yaml:"capacity" msgpack:"capacity"`
	Consumers int     `json:"consumers" yaml:"consumers" msgpack:"consumers"`

	// Produced counts items the queue accepted; Dropped counts items the
	// broken variant discarded because its queue looked full.
	Produced int `json:"produced" yaml:"produced" msgpack:"produced"`
	Dropped  int `json:"dropped" yaml:"dropped" msgpack:"dropped"`

	Consumed    int   `json:"consumed" yaml:"consumed" msgpack:"consumed"`
	PerConsumer []int `json:"per_consumer" yaml:"per_consumer" msgpack:"per_consumer"`

	// Duplicates counts deliveries beyond the first of any item, plus
	// values outside 1..Items. Lost counts items never delivered.
	Duplicates int  `json:"duplicates" yaml:"duplicates" msgpack:"duplicates"`
	Lost       int  `json:"lost" yaml:"lost" msgpack:"lost"`
	InOrder    bool `json:"in_order" yaml:"in_order" msgpack:"in_order"`

	// MaxLen is the larger of the queue's high-water mark and the largest
	// sampled length. FinalLen is the length after all workers stopped.
	MaxLen        int `json:"max_len" yaml:"max_len" msgpack:"max_len"`
	SampledMaxLen int `json:"sampled_max_len" yaml:"sampled_max_len" msgpack:"sampled_max_len"`
	Samples       int `json:"samples" yaml:"samples" msgpack:"samples"`
	FinalLen      int `json:"final_len" yaml:"final_len" msgpack:"final_len"`

	Queue    boundedq.Stats `json:"queue" yaml:"queue" msgpack:"queue"`
	Duration time.Duration  `json:"duration" yaml:"duration" msgpack:"duration"`

	// Received holds each consumer's items in the order received.
	Received [][]int `json:"received,omitempty" yaml:"received,omitempty" msgpack:"received,omitempty"`
}

// Correct reports whether every item was delivered exactly once, in order
// per consumer, without the queue exceeding its capacity.
func (r *Report) Correct() bool {
	return r.Lost == 0 &&
		r.Duplicates == 0 &&
		r.Dropped == 0 &&
		r.InOrder &&
		r.MaxLen <= r.Capacity &&
		r.FinalLen == 0
}

// tally fills the delivery fields from the per-consumer sequences.
func (r *Report) tally(received [][]int) {
	r.Received = received
	r.PerConsumer = make([]int, len(received))
	r.InOrder = true

	seen := make([]bool, r.Items+1)
	distinct := 0
	for c, items := range received {
		r.PerConsumer[c] = len(items)
		r.Consumed += len(items)
		for i, v := range items {
			if i > 0 && v <= items[i-1] {
				r.InOrder = false
			}
			if v < 1 || v > r.Items || seen[v] {
				continue
			}
			seen[v] = true
			distinct++
		}
	}
	r.Duplicates = r.Consumed - distinct
	r.Lost = r.Items - distinct
}
