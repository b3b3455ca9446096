//go:build !race

package tornread_test

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tornread/tornread"
)

// The tests in this file exercise the deliberately racy update path, so
// they are excluded from -race runs, where the race detector would
// (correctly) report the injected fault.

func TestDo_ReproducesTornRead(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress reproduction in short mode")
	}
	if runtime.GOMAXPROCS(0) < 2 {
		t.Skip("torn reads need true parallelism between mutator and observers")
	}

	config := tornread.NewConfig()
	config.MaxTrials = 50000
	config.ProgressEvery = 0

	start := time.Now()
	summary, err := tornread.Do(context.Background(), config)
	if errors.Is(err, tornread.ErrNotReproduced) {
		// Environment dependent: some platforms publish both header
		// words such that the torn state is never observed.
		t.Skipf("torn read not observed on this platform after %d trials", summary.TrialsRun)
	}
	require.NoError(t, err)

	assert.True(t, summary.Reproduced)
	assert.Equal(t, `{"Status":"cancelle"}`, summary.Value, "the only accepted corruption is the target truncated to the baseline's length")
	assert.GreaterOrEqual(t, summary.Observation, 0)
	assert.Less(t, summary.Observation, config.Observers)
	assert.GreaterOrEqual(t, summary.Trial, 0)
	assert.Less(t, time.Since(start), 60*time.Second)
}

func TestDo_RacyObservationsAreBaselineTargetOrCorrupt(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping stress run in short mode")
	}

	// Whatever the scheduler does, a reproduction's reported value is
	// always exactly the corrupted serialization, never anything else.
	config := tornread.NewConfig()
	config.Observers = 200
	config.MaxTrials = 2000
	config.ProgressEvery = 0

	summary, err := tornread.Do(context.Background(), config)
	if err != nil {
		assert.ErrorIs(t, err, tornread.ErrNotReproduced)
		assert.False(t, summary.Reproduced)
		return
	}
	assert.Equal(t, `{"Status":"cancelle"}`, summary.Value)
}
