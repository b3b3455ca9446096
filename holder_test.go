package tornread_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tornread/tornread"
)

func TestRacyHolder(t *testing.T) {
	holder := tornread.NewRacyHolder("canceled")

	snapshot, err := holder.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, `{"Status":"canceled"}`, string(snapshot))

	holder.Mutate("cancelled")

	snapshot, err = holder.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, `{"Status":"cancelled"}`, string(snapshot), "a snapshot ordered after the mutation sees the whole new value")
}

func TestAtomicHolder(t *testing.T) {
	holder := tornread.NewAtomicHolder("canceled")

	snapshot, err := holder.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, `{"Status":"canceled"}`, string(snapshot))

	holder.Mutate("cancelled")

	snapshot, err = holder.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, `{"Status":"cancelled"}`, string(snapshot))
}
