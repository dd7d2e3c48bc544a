package amq

import (
	"errors"
	"fmt"
	"math/rand"
)

const nucleotides = "ACGT"

// maxDrawFactor bounds how many keys the splitter may draw, as a
// multiple of the requested total.  Duplicate-prone key spaces (short
// k-mers, large totals) would otherwise spin forever absorbing
// duplicates into the sets.
const maxDrawFactor = 100

// ErrGenerationExhausted is returned when the splitter cannot reach the
// requested set sizes within its draw budget.
var ErrGenerationExhausted = errors.New("key generation exhausted before reaching requested sizes")

// KmerSource produces an infinite sequence of length-k strings over the
// nucleotide alphabet.  Each call to Next consumes the shared random
// source, so the sequence is not restartable.
type KmerSource struct {
	k   int
	rng *rand.Rand
	buf []byte
}

func NewKmerSource(rng *rand.Rand, k int) *KmerSource {
	return &KmerSource{k: k, rng: rng, buf: make([]byte, k)}
}

// Next draws one k-mer, each symbol independent and uniform.
func (s *KmerSource) Next() string {
	for i := range s.buf {
		s.buf[i] = nucleotides[s.rng.Intn(len(nucleotides))]
	}
	return string(s.buf)
}

// SplitKeys is a universe of unique keys partitioned into a positive set
// (inserted into the structure under test) and a disjoint negative set
// (never inserted, used to measure false positives).
type SplitKeys struct {
	Positives []string
	Negatives []string
}

// NewSplitKeys draws k-mers from rng until the positive set holds
// positiveSize unique keys and both sets together hold at least
// totalSize.  Duplicate draws are absorbed by set semantics.  The draw
// count is capped; exceeding it returns ErrGenerationExhausted.
func NewSplitKeys(rng *rand.Rand, positiveSize, totalSize, kmerSize int) (*SplitKeys, error) {
	if positiveSize > totalSize {
		return nil, fmt.Errorf("positive size %d exceeds total size %d", positiveSize, totalSize)
	}
	if kmerSize < 1 {
		return nil, fmt.Errorf("kmer size must be at least 1, got %d", kmerSize)
	}

	source := NewKmerSource(rng, kmerSize)
	positives := make(map[string]struct{}, positiveSize)
	negatives := make(map[string]struct{}, totalSize-positiveSize)

	maxDraws := maxDrawFactor * totalSize
	for draw := 0; len(positives)+len(negatives) < totalSize; draw++ {
		if draw >= maxDraws {
			return nil, fmt.Errorf("%w: %d unique keys after %d draws, wanted %d",
				ErrGenerationExhausted, len(positives)+len(negatives), draw, totalSize)
		}
		key := source.Next()
		if len(positives) < positiveSize {
			positives[key] = struct{}{}
			continue
		}
		if _, dup := positives[key]; !dup {
			negatives[key] = struct{}{}
		}
	}

	split := &SplitKeys{
		Positives: make([]string, 0, len(positives)),
		Negatives: make([]string, 0, len(negatives)),
	}
	for key := range positives {
		split.Positives = append(split.Positives, key)
	}
	for key := range negatives {
		split.Negatives = append(split.Negatives, key)
	}
	return split, nil
}
