package amq

import (
	"fmt"

	"github.com/relab/bbhash"
)

// gamma is the entries-per-key oversampling factor for MPHF
// construction.  Higher values reduce construction retries at the cost
// of space.
const gamma = 1.7

// MPHF exposes a bare minimal perfect hash function as an AMQ backend:
// a key is reported present whenever the function maps it to any slot.
// With no fingerprint check its false positive rate is the hash
// function's intrinsic domain extension error, which makes it a lower
// bound baseline rather than a useful filter.
type MPHF struct {
	mphf *bbhash.BBHash2
	size int
}

var _ Filter = (*MPHF)(nil)

func NewMPHF(keys []string) (*MPHF, error) {
	mphf, err := bbhash.New(hashKeys(keys), bbhash.Gamma(gamma))
	if err != nil {
		return nil, fmt.Errorf("building mphf: %w", err)
	}
	serialized, err := mphf.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("sizing mphf: %w", err)
	}
	return &MPHF{mphf: mphf, size: len(serialized)}, nil
}

func (m *MPHF) Contains(key string) bool {
	return m.mphf.Find(keyHash(key)) != 0
}

func (m *MPHF) SizeInBytes() int {
	return m.size
}
