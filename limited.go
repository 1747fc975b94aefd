package huffman

import (
	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// GenerateLimitedLengths computes canonical Huffman code lengths for the
// given weights such that no code is longer than maxSize bits, minimizing
// the weighted length among all codes satisfying that bound.  The result has
// the same length as weights; entry i is 0 iff weights[i] is 0.
//
// It returns a *LimitError (matching ErrInfeasible) if any weight is
// non-zero and either maxSize < 1 or there are more than 2**maxSize symbols
// with non-zero weight.  The check happens before any work is done.
//
// The algorithm is package-merge (Larmore and Hirschberg).  Each of the
// maxSize levels adds a copy of every symbol to the working list, sorts it
// by weight, and pairs neighbours from the lightest end; an unpaired
// heaviest item is dropped.  After the last level the N-1 lightest packages
// give each symbol one bit per occurrence.
//
func GenerateLimitedLengths[W Weight](weights []W, maxSize int) (Lengths, error) {
	checkAlphabet(len(weights))

	lengths := make(Lengths, len(weights))
	a, base := collectLeaves(weights)
	numLeaves := len(base)

	switch {
	case numLeaves == 0:
		return lengths, nil
	case maxSize < 1 || !fits(numLeaves, maxSize):
		return nil, &LimitError{NumSymbols: numLeaves, MaxSize: maxSize}
	case numLeaves == 1:
		lengths[a.records[base[0].ref].symbol] = 1
		return lengths, nil
	}

	// Levels past N-1 can't change anything: no optimal code is deeper
	// than N-1 bits.
	levels := maxSize
	if levels > numLeaves-1 {
		levels = numLeaves - 1
	}

	var work []bundle
	for level := 0; level < levels; level++ {
		work = append(work, base...)
		work = mergePairs(a, work)
	}

	// mergePairs emits packages in non-decreasing weight order, so the
	// N-1 lightest are a prefix.
	want := numLeaves - 1
	if len(work) < want {
		return lengths, nil
	}
	for _, b := range work[:want] {
		a.walk(b, func(symbol Symbol, _ int) {
			assert.Assertf(lengths[symbol] < maxCodeSize, "code length for symbol %d overflows", symbol)
			lengths[symbol]++
		})
	}
	return lengths, nil
}

// mergePairs sorts src by ascending weight, then merges items 2k and 2k+1
// for each k.  If len(src) is odd, the heaviest item has no partner and is
// discarded.  The result is in non-decreasing weight order.
func mergePairs(a *arena, src []bundle) []bundle {
	slices.SortStableFunc(src, func(x, y bundle) bool {
		return x.weight.less(y.weight)
	})

	dst := make([]bundle, 0, len(src)/2)
	for i := 0; i+1 < len(src); i += 2 {
		dst = append(dst, a.merge(src[i], src[i+1]))
	}
	return dst
}
