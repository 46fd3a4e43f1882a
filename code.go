package hufftree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the bit length of the longest possible code, reached by a
// fully skewed tree over all 256 byte values.
const MaxCodeSize = NumSymbols - 1

const wordBits = 64

// Code represents a sequence of bits: the path from the root of a code tree
// to a leaf, where 0 means "left" and 1 means "right".
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Words holds the actual values of the bits.  The most significant bit
	// of Words[0] is the first bit.
	Words [4]uint64
}

// ParseCode is a convenience function that constructs a Code from a string of
// '0' and '1' characters.
func ParseCode(str string) (Code, bool) {
	var hc Code
	if len(str) > MaxCodeSize {
		return Code{}, false
	}
	for _, ch := range str {
		switch ch {
		case '0':
			hc = hc.Append(false)
		case '1':
			hc = hc.Append(true)
		default:
			return Code{}, false
		}
	}
	return hc, true
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "Code of size %d cannot grow", hc.Size)
	if bit {
		index, shift := wordAndShift(hc.Size)
		hc.Words[index] |= uint64(1) << shift
	}
	hc.Size++
	return hc
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i byte) bool {
	assert.Assertf(i < hc.Size, "bit index %d out of range for Code of size %d", i, hc.Size)
	index, shift := wordAndShift(i)
	return (hc.Words[index]>>shift)&1 != 0
}

// HasPrefix returns true iff the first prefix.Size bits of this Code equal
// prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := byte(0); i < prefix.Size; i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	var buf strings.Builder
	buf.Grow(int(hc.Size))
	for i := byte(0); i < hc.Size; i++ {
		if hc.Bit(i) {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return strconv.Quote(buf.String())
}

var _ fmt.Stringer = Code{}

func wordAndShift(i byte) (int, uint) {
	return int(i) / wordBits, uint(wordBits - 1 - int(i)%wordBits)
}
