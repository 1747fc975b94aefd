package huffman

import (
	"math"

	"github.com/chronos-tachyon/assert"
)

// Symbol represents a symbol in an arbitrary alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// checkAlphabet panics if an alphabet of numSymbols symbols cannot be indexed
// by Symbol.
func checkAlphabet(numSymbols int) {
	assert.Assertf(numSymbols-1 <= int(MaxSymbol), "numSymbols %d > MaxSymbol+1 %d", numSymbols, int64(MaxSymbol)+1)
}
