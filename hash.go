package amq

import (
	"github.com/dgryski/go-metro"
	"github.com/zeebo/xxh3"
)

// fingerprintSeed keeps the fingerprint hash independent of the key hash
// feeding the MPHF, so a slot collision and a fingerprint collision are
// uncorrelated events.
const fingerprintSeed = 0x5bd1e995

// keyHash is the 64 bit hash fed to the minimal perfect hash function.
func keyHash(key string) uint64 {
	return xxh3.HashString(key)
}

// fingerprintHash is the 64 bit hash truncated into fingerprints.
func fingerprintHash(key string) uint64 {
	return metro.Hash64Str(key, fingerprintSeed)
}

// hashKeys maps a key set onto the 64 bit key space the MPHF is built
// over.  Slice order follows the input.
func hashKeys(keys []string) []uint64 {
	hashes := make([]uint64, len(keys))
	for i, key := range keys {
		hashes[i] = keyHash(key)
	}
	return hashes
}
