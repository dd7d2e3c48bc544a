// package amq benchmarks interchangeable approximate membership query
// structures.  An AMQ structure answers "is this key a member of set S?"
// with no false negatives and a tunable false positive rate, trading
// accuracy for sub-linear space.  Three backends are provided:
//  1. a fingerprint array (minimal perfect hash + bit-packed fingerprints)
//  2. a bloom filter
//  3. a bare minimal perfect hash function
package amq

// Filter is the capability set shared by every AMQ backend.  A filter is
// built once from a key set and is read-only afterwards, so Contains may
// be called concurrently.
type Filter interface {
	// Contains reports whether key may be a member of the build set.
	// It returns true for every build key; it may also return true
	// for keys never inserted (a false positive).
	Contains(key string) bool

	// SizeInBytes reports the serialized footprint of the structure,
	// used to compare space efficiency across backends.
	SizeInBytes() int
}
