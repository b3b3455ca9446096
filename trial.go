package tornread

import (
	"bytes"
	"context"
	"time"
)

// trialResult is the outcome of a single trial.
type trialResult struct {
	// observation is the zero-based drain position at which corruption
	// was seen, or -1.
	observation int
	// value is the corrupted serialized literal, when observation >= 0.
	value string
	// collected is how many observations the collector drained.
	collected int
	// timedOut marks a trial abandoned before all observations arrived.
	timedOut bool
}

// runTrial provokes the race once: one mutator goroutine racing
// cfg.Observers snapshot goroutines over a freshly created holder.
//
// The results channel is buffered to hold every observation, so the
// observers of a trial abandoned by the timeout finish on their own
// without blocking. The channel is owned by this call and never shared
// across trials, so stragglers from an abandoned trial cannot contribute
// observations to a later one.
func runTrial(ctx context.Context, newHolder HolderFunc, cfg *Config, corrupted []byte) trialResult {
	holder := newHolder(cfg.Baseline)
	results := make(chan []byte, cfg.Observers)

	go holder.Mutate(cfg.Target)
	for i := 0; i < cfg.Observers; i++ {
		go func() {
			snapshot, err := holder.Snapshot()
			if err != nil {
				snapshot = nil
			}
			results <- snapshot
		}()
	}

	timeout := time.NewTimer(cfg.Timeout)
	defer timeout.Stop()

	res := trialResult{observation: -1}
	for res.collected < cfg.Observers {
		select {
		case snapshot := <-results:
			if bytes.Equal(snapshot, corrupted) {
				res.observation = res.collected
				res.value = string(snapshot)
				res.collected++
				return res
			}
			res.collected++
		case <-timeout.C:
			res.timedOut = true
			return res
		case <-ctx.Done():
			res.timedOut = true
			return res
		}
	}
	return res
}
