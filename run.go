package tornread

import (
	"context"
	"fmt"
	"time"
)

// Do executes a reproduction run based on the provided configuration:
// bounded trials until corruption is observed, the trial budget is
// exhausted, or ctx is canceled.
//
// On reproduction the returned error is nil. On exhaustion the error
// wraps [ErrNotReproduced] and the Summary still carries the full trial
// accounting. Timed-out trials are logged, counted and skipped; they
// never end the run by themselves.
func Do(ctx context.Context, config *Config) (*Summary, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	corrupted, err := corruptSnapshot(config.Baseline, config.Target)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize corrupted pattern: %w", err)
	}

	newHolder := config.holderFunc()
	logger := config.Logger

	start := time.Now()
	summary := &Summary{Trial: -1, Observation: -1}

	for trial := 0; trial < config.MaxTrials; trial++ {
		if err := ctx.Err(); err != nil {
			summary.Elapsed = time.Since(start)
			return summary, err
		}

		res := runTrial(ctx, newHolder, config, corrupted)
		summary.TrialsRun++

		if res.timedOut {
			summary.TrialsTimedOut++
			if logger != nil {
				logger.Warn().
					Err(ErrTrialTimeout).
					Int("trial", trial).
					Int("collected", res.collected).
					Int("expected", config.Observers).
					Msg("trial discarded")
			}
			continue
		}

		if res.observation >= 0 {
			summary.Reproduced = true
			summary.Trial = trial
			summary.Observation = res.observation
			summary.Value = res.value
			summary.Elapsed = time.Since(start)
			if logger != nil {
				logger.Info().
					Int("trial", trial).
					Int("observation", res.observation).
					Str("value", res.value).
					Msg("corruption reproduced")
			}
			return summary, nil
		}

		if config.ProgressEvery > 0 && (trial+1)%config.ProgressEvery == 0 && logger != nil {
			logger.Info().
				Int("trials", trial+1).
				Int("timeouts", summary.TrialsTimedOut).
				Dur("elapsed", time.Since(start)).
				Msg("still probing")
		}
	}

	summary.Elapsed = time.Since(start)
	if logger != nil {
		logger.Info().
			Int("trials", summary.TrialsRun).
			Int("timeouts", summary.TrialsTimedOut).
			Dur("elapsed", summary.Elapsed).
			Msg("trial budget exhausted")
	}
	return summary, fmt.Errorf("%w: %d trials, %d timed out", ErrNotReproduced, summary.TrialsRun, summary.TrialsTimedOut)
}
