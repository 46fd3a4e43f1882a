package hufftree

import (
	"bytes"
	"fmt"
	"io"
)

// Node is a node of a Huffman code tree.  A Node is a leaf iff both Left and
// Right are nil.
type Node struct {
	// Symbol is the byte value of a leaf.  Internal nodes carry the Symbol
	// of their Left child, which is only used to break ties while merging.
	Symbol byte

	// Weight is the aggregate frequency of all leaves under this node.
	// Trees read back from a header have zero weights.
	Weight uint64

	Left  *Node
	Right *Node
}

// IsLeaf returns true iff this node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree builds the Huffman code tree for the given histogram by
// repeatedly merging the two lowest-priority nodes (see Queue).  The first
// node removed becomes the left child.
//
// If the histogram has exactly one distinct byte value, the tree is a single
// leaf.  If it has none, BuildTree returns nil.
//
func BuildTree(h *Histogram) *Node {
	var q Queue
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if count := h.Counts[symbol]; count != 0 {
			q.Add(&Node{Symbol: byte(symbol), Weight: count})
		}
	}

	if q.Len() == 0 {
		return nil
	}

	for q.Len() > 1 {
		left := q.RemoveMin()
		right := q.RemoveMin()
		q.Add(&Node{
			Symbol: left.Symbol,
			Weight: left.Weight + right.Weight,
			Left:   left,
			Right:  right,
		})
	}

	return q.RemoveMin()
}

// Dump writes a programmer-readable debugging dump of the tree rooted at n to
// the given writer, one node per line, indented by depth.
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	dumpNode(&buf, n, 0)
	return buf.WriteTo(w)
}

func dumpNode(buf *bytes.Buffer, n *Node, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	if n.IsLeaf() {
		fmt.Fprintf(buf, "Leaf(%d, weight=%d)\n", n.Symbol, n.Weight)
		return
	}
	fmt.Fprintf(buf, "Internal(weight=%d)\n", n.Weight)
	dumpNode(buf, n.Left, depth+1)
	dumpNode(buf, n.Right, depth+1)
}
