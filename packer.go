package hufftree

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitPacker packs a sequence of Codes into bytes, first bit in the most
// significant position.  Every completed byte is written out immediately;
// Close pads the final partial byte with zero bits.
type BitPacker struct {
	w    *bitio.Writer
	bits uint64
}

// NewBitPacker returns a BitPacker writing to w.  It must be closed to flush
// the final byte.
func NewBitPacker(w io.Writer) *BitPacker {
	return &BitPacker{w: bitio.NewWriter(w)}
}

// WriteCode appends the bits of hc.  A zero-length Code writes nothing.
func (p *BitPacker) WriteCode(hc Code) error {
	remaining := hc.Size
	for index := 0; remaining > 0; index++ {
		n := remaining
		if n > wordBits {
			n = wordBits
		}
		word := hc.Words[index] >> (wordBits - uint(n))
		if err := p.w.WriteBits(word, n); err != nil {
			return errors.Wrap(err, "failed to write code bits")
		}
		remaining -= n
	}
	p.bits += uint64(hc.Size)
	return nil
}

// Bits returns the number of code bits written so far, excluding padding.
func (p *BitPacker) Bits() uint64 {
	return p.bits
}

// Close pads any pending bits to a full byte with zeros and flushes them.  It
// does not close the underlying writer.
func (p *BitPacker) Close() error {
	if err := p.w.Close(); err != nil {
		return errors.Wrap(err, "failed to flush final byte")
	}
	return nil
}
