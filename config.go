package tornread

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Config holds all configuration options for a reproduction run
type Config struct {
	// Observers is the number of concurrent snapshot goroutines per trial
	Observers int
	// MaxTrials bounds the outer loop; once it is reached the run reports
	// ErrNotReproduced instead of looping forever
	MaxTrials int
	// Timeout bounds how long the collector waits for one trial's
	// observations before the trial is discarded
	Timeout time.Duration

	// Baseline is the status value every trial starts from
	Baseline string
	// Target is the status value the mutator writes. Must be strictly
	// longer than Baseline so the torn state has a distinct form.
	Target string

	// Atomic selects the atomic control update path, which should never
	// reproduce corruption
	Atomic bool

	// NewHolder overrides holder construction. If nil, the holder is
	// chosen from Atomic.
	NewHolder HolderFunc

	// ProgressEvery emits a progress log event after this many trials.
	// Zero disables progress events.
	ProgressEvery int

	// Logger receives trial-level events. If nil, logging is disabled.
	Logger *zerolog.Logger
}

// NewConfig creates a new Config with the defaults of the canonical
// "canceled"/"cancelled" reproduction.
func NewConfig() *Config {
	return &Config{
		Observers:     1000,
		MaxTrials:     100000,
		Timeout:       5 * time.Second,
		Baseline:      "canceled",
		Target:        "cancelled",
		ProgressEvery: 10000,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Observers <= 0 {
		return fmt.Errorf("%w: observers must be positive, got %d", ErrInvalidConfig, c.Observers)
	}
	if c.MaxTrials <= 0 {
		return fmt.Errorf("%w: max trials must be positive, got %d", ErrInvalidConfig, c.MaxTrials)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %v", ErrInvalidConfig, c.Timeout)
	}
	if c.Baseline == "" {
		return fmt.Errorf("%w: baseline is required", ErrInvalidConfig)
	}
	if c.Target == "" {
		return fmt.Errorf("%w: target is required", ErrInvalidConfig)
	}
	if len(c.Target) <= len(c.Baseline) {
		return fmt.Errorf("%w: target %q must be longer than baseline %q", ErrInvalidConfig, c.Target, c.Baseline)
	}
	if CorruptPattern(c.Baseline, c.Target) == c.Baseline {
		return fmt.Errorf("%w: a torn read of %q over %q is indistinguishable from the baseline", ErrInvalidConfig, c.Target, c.Baseline)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("%w: progress interval must not be negative, got %d", ErrInvalidConfig, c.ProgressEvery)
	}
	return nil
}

// holderFunc returns the holder constructor the run will use.
func (c *Config) holderFunc() HolderFunc {
	if c.NewHolder != nil {
		return c.NewHolder
	}
	if c.Atomic {
		return func(baseline string) Holder { return NewAtomicHolder(baseline) }
	}
	return func(baseline string) Holder { return NewRacyHolder(baseline) }
}
