package hufftree

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each byte value present in a code tree to its Code.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	length  int
	minSize byte
	maxSize byte
}

// DeriveCodes walks the tree rooted at root and assigns each leaf the path
// taken to reach it.  A tree consisting of a single leaf assigns that leaf the
// empty Code.  A nil root yields an empty table.
//
func DeriveCodes(root *Node) CodeTable {
	var t CodeTable
	if root != nil {
		t.derive(root, Code{})
	}
	return t
}

func (t *CodeTable) derive(n *Node, path Code) {
	if n.IsLeaf() {
		t.record(n.Symbol, path)
		return
	}
	t.derive(n.Left, path.Append(false))
	t.derive(n.Right, path.Append(true))
}

func (t *CodeTable) record(symbol byte, hc Code) {
	if t.length == 0 {
		t.minSize = hc.Size
		t.maxSize = hc.Size
	} else if t.minSize > hc.Size {
		t.minSize = hc.Size
	} else if t.maxSize < hc.Size {
		t.maxSize = hc.Size
	}
	if !t.present[symbol] {
		t.length++
	}
	t.codes[symbol] = hc
	t.present[symbol] = true
}

// Lookup returns the Code for the given byte value, if it has one.
func (t *CodeTable) Lookup(symbol byte) (Code, bool) {
	return t.codes[symbol], t.present[symbol]
}

// Len returns the number of byte values that have a Code.
func (t *CodeTable) Len() int {
	return t.length
}

// MinSize is the bit length of the shortest Code.
func (t *CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest Code.
func (t *CodeTable) MaxSize() byte {
	return t.maxSize
}

// EncodedBits returns the total number of payload bits needed to encode the
// bytes counted by h using this table.
func (t *CodeTable) EncodedBits(h *Histogram) uint64 {
	var sum uint64
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if t.present[symbol] {
			sum += h.Counts[symbol] * uint64(t.codes[symbol].Size)
		}
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.  Byte values without a Code are omitted.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if t.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, t.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
