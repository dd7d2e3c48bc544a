package amq

import (
	"fmt"

	"github.com/relab/bbhash"
)

// FingerprintArray is an AMQ structure built from two primitives: a
// minimal perfect hash function mapping each build key to a unique slot
// in [0, n), and a bit-packed table storing a width-bit fingerprint of
// the key originally assigned each slot.  A query key is a member only
// if the MPHF yields a slot and the stored fingerprint matches the
// query's, so the false positive rate is roughly 1/2^width plus the
// MPHF's domain extension error.
type FingerprintArray struct {
	mphf     *bbhash.BBHash2
	table    *fingerprintTable
	mask     uint64
	mphfSize int
}

var _ Filter = (*FingerprintArray)(nil)

// NewFingerprintArray builds the MPHF over keys and writes each key's
// truncated hash into the slot the MPHF assigns it.  Width is the
// number of fingerprint bits per key, 1 through 64.
func NewFingerprintArray(keys []string, width uint8) (*FingerprintArray, error) {
	if width < 1 || width > 64 {
		return nil, fmt.Errorf("fingerprint width must be between 1 and 64 bits, got %d", width)
	}

	hashes := hashKeys(keys)
	mphf, err := bbhash.New(hashes, bbhash.Gamma(gamma))
	if err != nil {
		return nil, fmt.Errorf("building mphf: %w", err)
	}
	serialized, err := mphf.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("sizing mphf: %w", err)
	}

	table := newFingerprintTable(width, uint(len(keys)))
	fa := &FingerprintArray{
		mphf:     mphf,
		table:    table,
		mask:     table.mask,
		mphfSize: len(serialized),
	}
	for i, key := range keys {
		slot := mphf.Find(hashes[i])
		if slot == 0 {
			// every build key must map to a slot
			panic(fmt.Sprintf("mphf assigned no slot to build key %q", key))
		}
		table.set(uint(slot-1), fingerprintHash(key)&fa.mask)
	}
	return fa, nil
}

// Contains reports membership.  A key outside the MPHF's support is a
// definite negative; otherwise the stored fingerprint must match.
func (fa *FingerprintArray) Contains(key string) bool {
	slot := fa.mphf.Find(keyHash(key))
	if slot == 0 || uint(slot) > fa.table.len() {
		return false
	}
	return fa.table.get(uint(slot-1)) == fingerprintHash(key)&fa.mask
}

// SizeInBytes sums the MPHF footprint, the packed table, and one
// machine word for the mask.
func (fa *FingerprintArray) SizeInBytes() int {
	return fa.mphfSize + fa.table.sizeInBytes() + 8
}
