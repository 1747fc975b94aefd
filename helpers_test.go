package huffman

import (
	"math"
	mathbits "math/bits"
	"math/rand"
	"sort"
	"testing"
)

// optimalCost returns the weighted length of an optimal unbounded prefix
// code: the sum of the weights of every internal node of a Huffman tree,
// root included.
func optimalCost(weights []uint64) uint64 {
	var list []uint64
	for _, w := range weights {
		if w != 0 {
			list = append(list, w)
		}
	}
	switch len(list) {
	case 0:
		return 0
	case 1:
		return list[0]
	}

	var cost uint64
	for len(list) > 1 {
		sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
		sum := list[0] + list[1]
		cost += sum
		list = append(list[2:], sum)
	}
	return cost
}

// bruteForceCost returns the least weighted length over every assignment of
// lengths in [1, maxSize] that satisfies Kraft's inequality.  Costs are kept
// in 128 bits so that huge weights compare exactly.
func bruteForceCost(weights []uint64, maxSize int) sum128 {
	var present []uint64
	for _, w := range weights {
		if w != 0 {
			present = append(present, w)
		}
	}
	switch len(present) {
	case 0:
		return sum128{}
	case 1:
		return makeSum128(present[0])
	}

	best := sum128{hi: math.MaxUint64, lo: math.MaxUint64}
	var recurse func(i int, used uint64, cost sum128)
	recurse = func(i int, used uint64, cost sum128) {
		if used > 1<<uint(maxSize) {
			return
		}
		if i == len(present) {
			if cost.less(best) {
				best = cost
			}
			return
		}
		for size := 1; size <= maxSize; size++ {
			recurse(i+1, used+1<<uint(maxSize-size), cost.add(scaled(present[i], size)))
		}
	}
	recurse(0, 0, sum128{})
	return best
}

// exactCost is WeightedLength without saturation.
func exactCost(weights []uint64, lengths Lengths) sum128 {
	var total sum128
	for i, w := range weights {
		total = total.add(scaled(w, int(lengths[i])))
	}
	return total
}

func scaled(w uint64, size int) sum128 {
	hi, lo := mathbits.Mul64(w, uint64(size))
	return sum128{hi: hi, lo: lo}
}

// members returns the symbols folded into b, in member order.  A symbol
// appears once per occurrence.
func (a *arena) members(b bundle) []Symbol {
	var out []Symbol
	a.walk(b, func(symbol Symbol, _ int) {
		out = append(out, symbol)
	})
	return out
}

func randomWeights(rng *rand.Rand, n int) []uint64 {
	choices := [...]uint64{0, 0, 1, 1, 2, 3, 5, 8, 20, 100, 1000}
	weights := make([]uint64, n)
	for i := range weights {
		if rng.Intn(4) == 0 {
			weights[i] = uint64(rng.Int63n(1 << 20))
		} else {
			weights[i] = choices[rng.Intn(len(choices))]
		}
	}
	return weights
}

// checkShape verifies the properties shared by both generators.
func checkShape(t *testing.T, weights []uint64, lengths Lengths) {
	t.Helper()
	if len(lengths) != len(weights) {
		t.Fatalf("wrong length: expected %d, got %d", len(weights), len(lengths))
	}
	for i := range weights {
		if (weights[i] == 0) != (lengths[i] == 0) {
			t.Errorf("weights[%d] = %d but lengths[%d] = %d", i, weights[i], i, lengths[i])
		}
	}
	for i := range weights {
		for j := range weights {
			if weights[i] != 0 && weights[j] != 0 && weights[i] > weights[j] && lengths[i] > lengths[j] {
				t.Errorf("not monotonic: weights[%d] = %d > weights[%d] = %d, but lengths %d > %d",
					i, weights[i], j, weights[j], lengths[i], lengths[j])
			}
		}
	}
}
