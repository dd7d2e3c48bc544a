package amq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMPHFNoFalseNegatives(t *testing.T) {
	keys := testSplit(t, 1000, 2000)
	m, err := NewMPHF(keys.Positives)
	require.NoError(t, err)
	for _, key := range keys.Positives {
		require.True(t, m.Contains(key), "%q missing after construction", key)
	}
	assert.Greater(t, m.SizeInBytes(), 0)
}

// the domain extension error is a property of the hash construction,
// not a contract; we only pin down that repeated queries agree
func TestMPHFDeterministicQueries(t *testing.T) {
	keys := testSplit(t, 500, 1500)
	m, err := NewMPHF(keys.Positives)
	require.NoError(t, err)
	for _, key := range keys.Negatives[:100] {
		assert.Equal(t, m.Contains(key), m.Contains(key))
	}
}

func TestMPHFAssignsDistinctSlots(t *testing.T) {
	keys := testSplit(t, 1000, 1000)
	m, err := NewMPHF(keys.Positives)
	require.NoError(t, err)

	seen := map[uint64]string{}
	for _, key := range keys.Positives {
		slot := m.mphf.Find(keyHash(key))
		require.NotZero(t, slot, "no slot for build key %q", key)
		require.LessOrEqual(t, slot, uint64(len(keys.Positives)), "slot for %q out of range", key)
		other, dup := seen[slot]
		require.False(t, dup, "keys %q and %q share slot %d", key, other, slot)
		seen[slot] = key
	}
}
