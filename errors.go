package tornread

import "errors"

// Errors
var (
	// ErrInvalidConfig reports a configuration rejected by [Config.Validate].
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotReproduced reports that the trial budget was exhausted without
	// observing corruption. On platforms where the torn state is not
	// observable this is the expected outcome, not a harness failure.
	ErrNotReproduced = errors.New("corruption not reproduced within trial budget")

	// ErrTrialTimeout reports a trial whose observers did not all deliver
	// within the timeout. The trial is discarded and counted; the run
	// continues.
	ErrTrialTimeout = errors.New("trial timed out before all observations were collected")
)
