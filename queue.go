package hufftree

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Queue is a min-priority queue of tree nodes.
//
// Nodes are ordered by ascending Weight, and nodes of equal Weight are
// ordered by ascending Symbol.  Because every queued node carries the symbol
// of a distinct leaf (its leftmost one), this order is total and RemoveMin is
// deterministic.
//
type Queue struct {
	h nodeHeap
}

// Len returns the number of nodes in the queue.
func (q *Queue) Len() int {
	return q.h.Len()
}

// Add inserts a node into the queue.
func (q *Queue) Add(node *Node) {
	heap.Push(&q.h, node)
}

// RemoveMin removes and returns the node with the lowest priority.  It must
// not be called on an empty queue.
func (q *Queue) RemoveMin() *Node {
	assert.Assertf(q.h.Len() > 0, "RemoveMin called on an empty Queue")
	return heap.Pop(&q.h).(*Node)
}

// type nodeHeap {{{

type nodeHeap struct {
	list []*Node
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	return nodeLess(h.list[i], h.list[j])
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(*Node))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nil
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

func nodeLess(a, b *Node) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.Symbol < b.Symbol
}
