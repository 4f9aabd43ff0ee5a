package huffman

import (
	"container/heap"
	"math"
)

// type weightedNode + type nodeHeap {{{

type weightedNode struct {
	node   Node
	weight int64
	seq    uint64
}

// nodeHeap is a min-heap ordered by weight.  Nodes of equal weight leave the
// heap in the order they entered it.
type nodeHeap struct {
	list    []weightedNode
	nextSeq uint64
}

func (h *nodeHeap) Add(node Node, weight int64) {
	heap.Push(h, weightedNode{node: node, weight: weight, seq: h.nextSeq})
	h.nextSeq++
}

func (h *nodeHeap) Take() weightedNode {
	return heap.Pop(h).(weightedNode)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

// saturatingMul multiplies two non-negative values, clamping at MaxInt64.
func saturatingMul(a, b int64) int64 {
	if a != 0 && b > math.MaxInt64/a {
		return math.MaxInt64
	}
	return a * b
}

func saturatingAdd(a, b int64) int64 {
	sum := a + b
	if sum < a {
		return math.MaxInt64
	}
	return sum
}
