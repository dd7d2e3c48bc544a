package amq

import (
	"fmt"
	"io"

	"github.com/bits-and-blooms/bloom/v3"
)

// BloomFilter adapts a standard bloom filter to the Filter contract,
// giving the harness a well understood baseline comparator.
type BloomFilter struct {
	filter *bloom.BloomFilter
	size   int
}

var _ Filter = (*BloomFilter)(nil)

// NewBloomFilter sizes a filter for len(keys) entries at the target
// false positive rate and inserts every key.
func NewBloomFilter(keys []string, fpp float64) (*BloomFilter, error) {
	if fpp <= 0 || fpp >= 1 {
		return nil, fmt.Errorf("false positive rate must be in (0, 1), got %g", fpp)
	}
	filter := bloom.NewWithEstimates(uint(len(keys)), fpp)
	for _, key := range keys {
		filter.AddString(key)
	}
	size, err := filter.WriteTo(io.Discard)
	if err != nil {
		return nil, fmt.Errorf("sizing bloom filter: %w", err)
	}
	return &BloomFilter{filter: filter, size: int(size)}, nil
}

func (b *BloomFilter) Contains(key string) bool {
	return b.filter.TestString(key)
}

func (b *BloomFilter) SizeInBytes() int {
	return b.size
}
