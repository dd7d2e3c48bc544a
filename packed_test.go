package amq

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintTablePacking(t *testing.T) {
	r := rand.New(rand.NewSource(77)) // intentionally fixed seed
	for width := uint8(1); width <= 64; width++ {
		n := uint(100)
		table := newFingerprintTable(width, n)
		for pass := 0; pass < 10; pass++ {
			values := make([]uint64, n)
			for i := uint(0); i < n; i++ {
				values[i] = r.Uint64() & table.mask
				table.set(i, values[i])
			}
			for i := uint(0); i < n; i++ {
				if !assert.Equal(t, values[i], table.get(i), "width %d slot %d", width, i) {
					return
				}
			}
		}
	}
}

func TestFingerprintTableNeighborsUntouched(t *testing.T) {
	table := newFingerprintTable(13, 50)
	for i := uint(0); i < 50; i++ {
		table.set(i, uint64(i)&table.mask)
	}
	// overwrite one slot in the middle and confirm its neighbors survive
	table.set(25, table.mask)
	assert.Equal(t, uint64(24), table.get(24))
	assert.Equal(t, table.mask, table.get(25))
	assert.Equal(t, uint64(26), table.get(26))
}

func TestFingerprintTablePanicsOnOverflowValue(t *testing.T) {
	table := newFingerprintTable(4, 10)
	assert.Panics(t, func() { table.set(0, 16) })
}

func TestFingerprintTablePanicsOnOutOfRangeSlot(t *testing.T) {
	table := newFingerprintTable(4, 10)
	assert.Panics(t, func() { table.set(10, 1) })
}

func TestFingerprintTableSizeGrowsWithWidth(t *testing.T) {
	last := 0
	for _, width := range []uint8{4, 8, 16, 32, 64} {
		size := newFingerprintTable(width, 1000).sizeInBytes()
		assert.Greater(t, size, last, "width %d", width)
		last = size
	}
}
