package hufftree

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteHeader writes the decimal symbol count followed by the serialized
// tree.  When count is 0 only the count is written, and root may be nil.
func WriteHeader(w io.ByteWriter, count uint64, root *Node) error {
	for _, ch := range []byte(strconv.FormatUint(count, 10)) {
		if err := w.WriteByte(ch); err != nil {
			return errors.Wrap(err, "failed to write symbol count")
		}
	}
	if count == 0 {
		return nil
	}
	if err := WriteTree(w, root); err != nil {
		return errors.Wrap(err, "failed to write tree")
	}
	return nil
}

// ReadHeader reads a header written by WriteHeader.  Leading ASCII
// whitespace before the count is skipped.  The count ends at the first
// non-digit byte, which is pushed back with UnreadByte.  If the count is 0,
// no tree is read and the returned root is nil.
func ReadHeader(r io.ByteScanner) (uint64, *Node, error) {
	count, err := readCount(r)
	if err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}
	root, err := ReadTree(r)
	if err != nil {
		return 0, nil, err
	}
	return count, root, nil
}

// maxCountDigits is the length of the largest uint64 in decimal.
const maxCountDigits = 20

func readCount(r io.ByteScanner) (uint64, error) {
	var digits []byte
	for {
		ch, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, errors.Wrap(err, "failed to read symbol count")
		}
		if len(digits) == 0 && isSpace(ch) {
			continue
		}
		if ch < '0' || ch > '9' {
			if err := r.UnreadByte(); err != nil {
				return 0, errors.Wrap(err, "failed to read symbol count")
			}
			break
		}
		if len(digits) == maxCountDigits {
			return 0, errors.Errorf("symbol count longer than %d digits", maxCountDigits)
		}
		digits = append(digits, ch)
	}

	if len(digits) == 0 {
		return 0, ErrMissingCount
	}

	count, err := strconv.ParseUint(string(digits), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid symbol count %q", digits)
	}
	return count, nil
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
