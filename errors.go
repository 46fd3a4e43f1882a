package hufftree

import (
	"github.com/pkg/errors"
)

// ErrMalformedTree is returned when a serialized tree contains an unknown
// tag byte or nests deeper than any 256-symbol tree can.
var ErrMalformedTree = errors.New("malformed Huffman tree")

// ErrMissingCount is returned when a header does not begin with a decimal
// symbol count.
var ErrMissingCount = errors.New("missing symbol count in header")

// ErrTruncated is returned when the payload ends before the declared number
// of symbols has been decoded.
var ErrTruncated = errors.New("truncated Huffman payload")
