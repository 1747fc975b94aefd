package huffman

import (
	"math"
	mathbits "math/bits"
)

// minSizeFor returns the smallest code length able to give n symbols
// distinct codes, i.e. ceil(log2(n)).
func minSizeFor(n int) int {
	if n <= 1 {
		return 0
	}
	return mathbits.Len64(uint64(n - 1))
}

// fits reports whether n symbols fit in a code of at most maxSize bits.
func fits(n int, maxSize int) bool {
	return minSizeFor(n) <= maxSize
}

// sum128 is an unsigned 128-bit weight.  A bundle's weight is the exact sum
// of its members' weights: at most 2**31 symbols of at most 64 bits each,
// repeated over at most 2**31 package-merge levels, stays below 2**126.
type sum128 struct {
	hi uint64
	lo uint64
}

func makeSum128(x uint64) sum128 {
	return sum128{lo: x}
}

func (x sum128) add(y sum128) sum128 {
	lo, carry := mathbits.Add64(x.lo, y.lo, 0)
	hi, _ := mathbits.Add64(x.hi, y.hi, carry)
	return sum128{hi: hi, lo: lo}
}

func (x sum128) less(y sum128) bool {
	if x.hi != y.hi {
		return x.hi < y.hi
	}
	return x.lo < y.lo
}

// addSaturating adds two weights, clamping at math.MaxUint64.
func addSaturating(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// mulSaturating multiplies two weights, clamping at math.MaxUint64.
func mulSaturating(a, b uint64) uint64 {
	hi, lo := mathbits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}
