package hufftree

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitUnpacker decodes symbols one at a time by walking a code tree with the
// bits of an input stream.
//
// A new byte is read from the input only when all bits of the previous byte
// have been consumed; bits left over after a symbol is decoded are kept for
// the next call to Next.
//
type BitUnpacker struct {
	root *Node
	r    *bitio.Reader
}

// NewBitUnpacker returns a BitUnpacker that walks root using the bits of r.
//
// If r does not implement io.ByteReader it is wrapped in a bufio.Reader, which
// may read ahead of the bits actually consumed.
//
func NewBitUnpacker(root *Node, r io.Reader) *BitUnpacker {
	assert.Assertf(root != nil, "NewBitUnpacker called with a nil tree")
	return &BitUnpacker{root: root, r: bitio.NewReader(r)}
}

// Next decodes one symbol.  If the tree is a single leaf, its symbol is
// returned without consuming any input.
func (u *BitUnpacker) Next() (byte, error) {
	n := u.root
	for !n.IsLeaf() {
		bit, err := u.r.ReadBool()
		if err == io.EOF {
			return 0, errors.Wrap(ErrTruncated, "payload ended in the middle of a code")
		}
		if err != nil {
			return 0, errors.Wrap(err, "failed to read code bits")
		}
		if bit {
			n = n.Right
		} else {
			n = n.Left
		}
	}
	return n.Symbol, nil
}
