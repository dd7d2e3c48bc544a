package amq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBloomFilterNoFalseNegatives(t *testing.T) {
	keys := testSplit(t, 1000, 2000)
	bf, err := NewBloomFilter(keys.Positives, 0.01)
	require.NoError(t, err)
	for _, key := range keys.Positives {
		require.True(t, bf.Contains(key), "%q missing after construction", key)
	}
	assert.Greater(t, bf.SizeInBytes(), 0)
}

func TestBloomFilterFalsePositiveRate(t *testing.T) {
	keys := testSplit(t, 1000, 10000)
	bf, err := NewBloomFilter(keys.Positives, 0.01)
	require.NoError(t, err)

	falsePositives := 0
	for _, key := range keys.Negatives {
		if bf.Contains(key) {
			falsePositives++
		}
	}
	observed := float64(falsePositives) / float64(len(keys.Negatives))
	assert.Less(t, observed, 3*0.01)
}

func TestBloomFilterRejectsBadRate(t *testing.T) {
	_, err := NewBloomFilter([]string{"ACGT"}, 0)
	assert.Error(t, err)
	_, err = NewBloomFilter([]string{"ACGT"}, 1)
	assert.Error(t, err)
}
