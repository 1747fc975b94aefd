package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/constraints"
)

// Weight is the type of a symbol's occurrence count.  A weight of 0 means
// the symbol does not occur and receives no code.
type Weight interface {
	constraints.Unsigned
}

// GenerateLengths computes optimal canonical Huffman code lengths for the
// given weights, one per symbol.  The result has the same length as weights;
// entry i is 0 iff weights[i] is 0.
//
// A lone symbol with non-zero weight is assigned a 1-bit code rather than a
// 0-bit code, so that encoders always have at least one bit to emit.
//
func GenerateLengths[W Weight](weights []W) Lengths {
	checkAlphabet(len(weights))

	lengths := make(Lengths, len(weights))
	a, leaves := collectLeaves(weights)

	// Step 1: build a minheap of singleton bundles.

	h := bundleHeap{list: leaves}
	h.Init()

	// Step 2: merge the two lightest bundles until only the two children
	// of the (implicit) root remain.  The final merge is never performed;
	// it would only add the root, which contributes no bits.

	for h.Len() > 2 {
		x := heap.Pop(&h).(bundle)
		y := heap.Pop(&h).(bundle)
		heap.Push(&h, a.merge(x, y))
	}

	// Step 3: every surviving bundle hangs directly off the root, so the
	// depth of a member inside it is that member's code length.

	for _, b := range h.list {
		a.walk(b, func(symbol Symbol, depth int) {
			assert.Assertf(depth <= maxCodeSize, "code length %d > %d", depth, maxCodeSize)
			lengths[symbol] = byte(depth)
		})
	}
	return lengths
}

// collectLeaves creates one singleton bundle per symbol with non-zero
// weight, in symbol order.
func collectLeaves[W Weight](weights []W) (*arena, []bundle) {
	var count int
	for _, w := range weights {
		if w != 0 {
			count++
		}
	}

	a := newArena(count)
	leaves := make([]bundle, 0, count)
	for i, w := range weights {
		if w != 0 {
			leaves = append(leaves, a.leaf(Symbol(i), uint64(w)))
		}
	}
	return a, leaves
}

// type bundleHeap {{{

// bundleHeap orders bundles by ascending weight.  Ties go to the bundle
// created first, which keeps the output reproducible.
type bundleHeap struct {
	list []bundle
}

func (h *bundleHeap) Init() {
	heap.Init(h)
}

func (h *bundleHeap) Len() int {
	return len(h.list)
}

func (h *bundleHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *bundleHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight.less(b.weight)
	}
	return a.ref < b.ref
}

func (h *bundleHeap) Push(x interface{}) {
	h.list = append(h.list, x.(bundle))
}

func (h *bundleHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*bundleHeap)(nil)

// }}}
