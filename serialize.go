package hufftree

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const (
	tagLeaf     = 'L'
	tagInternal = 'I'
)

// WriteTree writes the tree rooted at root in prefix notation: 'L' followed by
// the symbol for a leaf, or 'I' followed by the left and right subtrees for
// an internal node.
func WriteTree(w io.ByteWriter, root *Node) error {
	if root.IsLeaf() {
		if err := w.WriteByte(tagLeaf); err != nil {
			return err
		}
		return w.WriteByte(root.Symbol)
	}
	if err := w.WriteByte(tagInternal); err != nil {
		return err
	}
	if err := WriteTree(w, root.Left); err != nil {
		return err
	}
	return WriteTree(w, root.Right)
}

// ReadTree reads a tree written by WriteTree.  The returned nodes have zero
// weights.  It consumes exactly the bytes of the serialized tree.
func ReadTree(r io.ByteReader) (*Node, error) {
	return readTree(r, 0)
}

func readTree(r io.ByteReader, depth int) (*Node, error) {
	if depth > MaxCodeSize {
		return nil, errors.Wrapf(ErrMalformedTree, "nesting deeper than %d levels", MaxCodeSize)
	}

	tag, err := r.ReadByte()
	if err != nil {
		return nil, eofIsUnexpected(err, "failed to read tree tag")
	}

	switch tag {
	case tagLeaf:
		symbol, err := r.ReadByte()
		if err != nil {
			return nil, eofIsUnexpected(err, "failed to read leaf symbol")
		}
		return &Node{Symbol: symbol}, nil

	case tagInternal:
		left, err := readTree(r, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := readTree(r, depth+1)
		if err != nil {
			return nil, err
		}
		return &Node{Symbol: left.Symbol, Left: left, Right: right}, nil

	default:
		return nil, errors.Wrapf(ErrMalformedTree, "unexpected tag byte 0x%02x", tag)
	}
}

// MarshalTree returns the serialized form of the tree rooted at root.
func MarshalTree(root *Node) []byte {
	var buf bytes.Buffer
	_ = WriteTree(&buf, root)
	return buf.Bytes()
}

// UnmarshalTree parses a serialized tree.  Trailing bytes are an error.
func UnmarshalTree(raw []byte) (*Node, error) {
	r := bytes.NewReader(raw)
	root, err := ReadTree(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, errors.Wrapf(ErrMalformedTree, "%d trailing bytes after tree", r.Len())
	}
	return root, nil
}

func eofIsUnexpected(err error, msg string) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return errors.Wrap(err, msg)
}
