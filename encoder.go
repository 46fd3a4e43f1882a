package hufftree

import (
	"bufio"
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Encoder holds the code tree and code table built from one input.
type Encoder struct {
	root  *Node
	table CodeTable
	count uint64
}

// Init initializes this Encoder from the byte frequencies of the input that
// will be encoded.  An empty histogram yields an Encoder with no tree, which
// can only encode the empty input.
func (e *Encoder) Init(h *Histogram) {
	root := BuildTree(h)
	*e = Encoder{
		root:  root,
		table: DeriveCodes(root),
		count: h.Total,
	}
}

// Encode returns the Code for the given byte value, which must have been
// counted by the histogram passed to Init.
func (e *Encoder) Encode(symbol byte) Code {
	hc, found := e.table.Lookup(symbol)
	assert.Assertf(found, "symbol %d is not in the code table", symbol)
	return hc
}

// Root returns the root of the code tree, or nil if the input was empty.
func (e *Encoder) Root() *Node {
	return e.root
}

// Table returns the code table.
func (e *Encoder) Table() *CodeTable {
	return &e.table
}

// Count returns the number of symbols the Encoder was built for.
func (e *Encoder) Count() uint64 {
	return e.count
}

// Write writes the header followed by the packed codes of src to w.  src must
// be the input whose histogram was passed to Init.
func (e *Encoder) Write(w io.Writer, src []byte) error {
	if uint64(len(src)) != e.count {
		return errors.Errorf("input has %d bytes, but the Encoder was built for %d", len(src), e.count)
	}

	bw := bufio.NewWriter(w)
	if err := WriteHeader(bw, e.count, e.root); err != nil {
		return err
	}

	// A single-leaf tree has empty codes: the count alone reproduces the
	// input, so there is no payload.
	if e.root != nil && !e.root.IsLeaf() {
		p := NewBitPacker(bw)
		for _, b := range src {
			hc, found := e.table.Lookup(b)
			if !found {
				return errors.Errorf("byte 0x%02x is not in the code table", b)
			}
			if err := p.WriteCode(hc); err != nil {
				return err
			}
		}
		if err := p.Close(); err != nil {
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "failed to flush output")
	}
	return nil
}

// Encode compresses src and writes the result to w.
func Encode(w io.Writer, src []byte) error {
	var h Histogram
	h.Scan(src)

	var e Encoder
	e.Init(&h)
	return e.Write(w, src)
}

// EncodeBytes compresses src and returns the result.
func EncodeBytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
