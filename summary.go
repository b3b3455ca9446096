package tornread

import (
	"fmt"
	"time"
)

// Summary reports the outcome of a full run: whether corruption was
// reproduced and where, plus the trial accounting the run went through.
type Summary struct {
	// Reproduced is true when some observation matched the corrupted
	// pattern.
	Reproduced bool `json:"reproduced"`
	// Trial is the zero-based index of the reproducing trial.
	Trial int `json:"trial"`
	// Observation is the zero-based drain position of the corrupted
	// observation within its trial.
	Observation int `json:"observation"`
	// Value is the corrupted serialized literal as observed.
	Value string `json:"value,omitempty"`

	// TrialsRun counts every trial started, including discarded ones.
	TrialsRun int `json:"trials_run"`
	// TrialsTimedOut counts trials discarded by the per-trial timeout.
	TrialsTimedOut int `json:"trials_timed_out"`
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// String renders the one-line report printed to stdout.
func (s *Summary) String() string {
	if s.Reproduced {
		return fmt.Sprintf("REPRODUCED at trial=%d observation=%d value=%s", s.Trial, s.Observation, s.Value)
	}
	return fmt.Sprintf("NOT REPRODUCED after trials=%d timeouts=%d", s.TrialsRun, s.TrialsTimedOut)
}
