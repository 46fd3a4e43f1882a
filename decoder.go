package hufftree

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

type readerAndByteScanner interface {
	io.Reader
	io.ByteScanner
}

// Decoder expands a stream written by Encode back into the original bytes.
type Decoder struct {
	count    uint64
	root     *Node
	unpacker *BitUnpacker
}

// Init initializes this Decoder by reading the header from r.  The payload is
// read lazily by Next.
//
// If r implements io.ByteScanner it is read one byte at a time and nothing
// past the payload bytes actually needed is consumed.  Otherwise it is wrapped
// in a bufio.Reader.
//
func (d *Decoder) Init(r io.Reader) error {
	br, ok := r.(readerAndByteScanner)
	if !ok {
		br = bufio.NewReader(r)
	}

	count, root, err := ReadHeader(br)
	if err != nil {
		return errors.Wrap(err, "failed to read header")
	}

	*d = Decoder{count: count, root: root}
	if root != nil {
		d.unpacker = NewBitUnpacker(root, br)
	}
	return nil
}

// Count returns the number of symbols declared by the header.
func (d *Decoder) Count() uint64 {
	return d.count
}

// Root returns the code tree read from the header, or nil if the count was 0.
func (d *Decoder) Root() *Node {
	return d.root
}

// Next decodes the next symbol.  The caller must not call Next more than
// Count() times: the bits after the last symbol are padding.
func (d *Decoder) Next() (byte, error) {
	if d.unpacker == nil {
		return 0, io.EOF
	}
	return d.unpacker.Next()
}

// WriteTo decodes exactly Count() symbols and writes them to w.
func (d *Decoder) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for i := uint64(0); i < d.count; i++ {
		symbol, err := d.Next()
		if err != nil {
			_ = bw.Flush()
			return written, err
		}
		if err := bw.WriteByte(symbol); err != nil {
			return written, errors.Wrap(err, "failed to write output")
		}
		written++
	}
	if err := bw.Flush(); err != nil {
		return written, errors.Wrap(err, "failed to flush output")
	}
	return written, nil
}

var _ io.WriterTo = (*Decoder)(nil)

// Decode reads a compressed stream from r and writes the original bytes to w.
func Decode(w io.Writer, r io.Reader) error {
	var d Decoder
	if err := d.Init(r); err != nil {
		return err
	}
	_, err := d.WriteTo(w)
	return err
}

// DecodeBytes decompresses raw and returns the original bytes.
func DecodeBytes(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decode(&buf, bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
