package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// bundle is a weighted package: the total weight of a group of symbols, plus
// a reference to the merge record listing those symbols.
//
// Bundles are plain values.  The arena behind them is append-only, so two
// bundles may share members (package-merge adds the same singleton bundles
// at every level) without either being able to disturb the other.
type bundle struct {
	weight sum128
	ref    int32
}

// mergeRecord is one entry in the arena.  Singleton records carry a symbol;
// merged records carry the two records they were built from.
type mergeRecord struct {
	symbol Symbol
	left   int32
	right  int32
}

// arena owns every merge record created during one generator call.
//
// Merging two bundles is O(1): it appends one record instead of copying
// member lists.  The member list of a bundle is recovered by walking its
// records, which costs O(members) and is done once per bundle that survives
// to the end.
type arena struct {
	records []mergeRecord
	stack   []walkItem
}

type walkItem struct {
	ref   int32
	depth int32
}

func newArena(numLeaves int) *arena {
	return &arena{records: make([]mergeRecord, 0, 2*numLeaves)}
}

// leaf creates the singleton bundle for symbol.
func (a *arena) leaf(symbol Symbol, weight uint64) bundle {
	assert.Assertf(symbol >= 0, "symbol %d < 0", symbol)
	assert.Assertf(weight > 0, "symbol %d has zero weight", symbol)
	ref := a.push(mergeRecord{symbol: symbol, left: -1, right: -1})
	return bundle{weight: makeSum128(weight), ref: ref}
}

// merge combines x and y into a new bundle whose weight is the sum and whose
// members are x's members followed by y's.
func (a *arena) merge(x, y bundle) bundle {
	ref := a.push(mergeRecord{symbol: InvalidSymbol, left: x.ref, right: y.ref})
	return bundle{weight: x.weight.add(y.weight), ref: ref}
}

func (a *arena) push(rec mergeRecord) int32 {
	n := len(a.records)
	assert.Assertf(n < int(MaxSymbol), "arena overflow: %d records", n)
	a.records = append(a.records, rec)
	return int32(n)
}

// walk calls fn once for every member occurrence of b, in member order.  The
// depth passed to fn is 1 for b itself and grows by one per merge level
// below b, so for a bundle that is a direct child of an implicit root it is
// exactly the member's code length.
func (a *arena) walk(b bundle, fn func(symbol Symbol, depth int)) {
	stack := append(a.stack[:0], walkItem{ref: b.ref, depth: 1})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		rec := a.records[top.ref]
		if rec.symbol >= 0 {
			fn(rec.symbol, int(top.depth))
			continue
		}

		// Push right first so that left is visited first.
		stack = append(stack, walkItem{rec.right, top.depth + 1})
		stack = append(stack, walkItem{rec.left, top.depth + 1})
	}
	a.stack = stack[:0]
}
