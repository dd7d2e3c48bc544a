package amq

import "fmt"

// fingerprintTable is a fixed size array of w-bit slots packed into
// 64 bit words.  Slots may straddle a word boundary.
type fingerprintTable struct {
	mask  uint64 // low `width` bits set
	width uint8
	slots uint
	words []uint64
}

func newFingerprintTable(width uint8, slots uint) *fingerprintTable {
	var mask uint64
	bit := uint64(1)
	for i := 0; i < int(width); i++ {
		mask |= bit
		bit <<= 1
	}

	// one spare word so a straddling final slot never reads past the end
	words := (slots*uint(width))/64 + 1
	return &fingerprintTable{mask, width, slots, make([]uint64, words)}
}

// A slot lives at bit offset ix*width, which lands `off` bits into
// words[word].  When off+width > 64 the high bits of the value spill
// into words[word+1].
func (t *fingerprintTable) set(ix uint, val uint64) {
	if ix >= t.slots {
		panic(fmt.Sprintf("slot %d out of range for table of %d slots", ix, t.slots))
	}
	if val&^t.mask != 0 {
		panic(fmt.Sprintf("attempt to store out of range value, numeric overflow: %x (%x)", val&^t.mask, val))
	}
	bitstart := ix * uint(t.width)
	word := bitstart / 64
	off := bitstart % 64

	t.words[word] = t.words[word]&^(t.mask<<off) | val<<off
	if spill := off + uint(t.width); spill > 64 {
		low := spill - 64
		m := uint64(1)<<low - 1
		t.words[word+1] = t.words[word+1]&^m | val>>(64-off)
	}
}

func (t *fingerprintTable) get(ix uint) (val uint64) {
	bitstart := ix * uint(t.width)
	word := bitstart / 64
	off := bitstart % 64

	val = t.words[word] >> off
	if off+uint(t.width) > 64 {
		val |= t.words[word+1] << (64 - off)
	}
	return val & t.mask
}

func (t *fingerprintTable) len() uint {
	return t.slots
}

// sizeInBytes reports the packed words plus two machine words of
// bookkeeping (width and slot count).
func (t *fingerprintTable) sizeInBytes() int {
	return len(t.words)*8 + 16
}
