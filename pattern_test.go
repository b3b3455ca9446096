package tornread_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tornread/tornread"
)

func TestCorruptPattern(t *testing.T) {
	t.Run("CanonicalPair", func(t *testing.T) {
		got := tornread.CorruptPattern("canceled", "cancelled")
		assert.Equal(t, "cancelle", got, "torn read of cancelled through len(canceled) should be cancelle")
	})

	t.Run("Deterministic", func(t *testing.T) {
		first := tornread.CorruptPattern("pending", "completed")
		second := tornread.CorruptPattern("pending", "completed")
		assert.Equal(t, first, second)
		assert.Equal(t, "complet", first)
	})

	t.Run("LengthMatchesBaseline", func(t *testing.T) {
		pairs := [][2]string{
			{"canceled", "cancelled"},
			{"ok", "rejected"},
			{"a", "abandoned"},
		}
		for _, pair := range pairs {
			got := tornread.CorruptPattern(pair[0], pair[1])
			assert.Len(t, got, len(pair[0]), "pattern must have the baseline's length")
			assert.NotEqual(t, pair[1], got, "pattern must differ from the target")
		}
	})
}

func TestCorruptPatternSerializedForm(t *testing.T) {
	// The collector matches the full serialization, so the expected form
	// must round through the same encoder as the observations do.
	expected, err := json.Marshal(&tornread.Record{Status: "cancelle"})
	require.NoError(t, err)
	assert.Equal(t, `{"Status":"cancelle"}`, string(expected))
}
