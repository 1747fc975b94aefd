package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the values of the bits, first bit most significant.
	Bits uint64
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

// maxEncoderSize is the longest code an Encoder can hold in Code.Bits.
const maxEncoderSize = 64

// Encoder implements an encoder for canonical Huffman codes.
type Encoder struct {
	codes   []Code
	minSize byte
	maxSize byte
}

// Init initializes this Encoder with an optimal, unbounded code.  The first
// argument tells Init how many Symbols are in this code's alphabet, and the
// second argument lists the frequency (i.e. number of occurrences) for each
// Symbol in the code, one for each Symbol except that any Symbol not
// represented in the list is assumed to have a frequency of 0.
//
func (e *Encoder) Init(numSymbols int, frequencies []uint32) {
	checkFrequencies(numSymbols, frequencies)
	err := e.InitLengths(padLengths(numSymbols, GenerateLengths(frequencies)))
	assert.Assertf(err == nil, "GenerateLengths produced an unusable code: %v", err)
}

// InitLimited is like Init, except that no code will be longer than maxSize
// bits.  It returns an error matching ErrInfeasible if the alphabet doesn't
// fit in maxSize bits, in which case the Encoder is left unchanged.
//
func (e *Encoder) InitLimited(numSymbols int, frequencies []uint32, maxSize byte) error {
	checkFrequencies(numSymbols, frequencies)
	lengths, err := GenerateLimitedLengths(frequencies, int(maxSize))
	if err != nil {
		return err
	}
	return e.InitLengths(padLengths(numSymbols, lengths))
}

// InitLengths initializes this Encoder from a table of code lengths, such as
// one received from the other party.  Codes are assigned per RFC 1951
// Section 3.2.2.  Incomplete tables are accepted; oversubscribed ones are
// not.
//
func (e *Encoder) InitLengths(lengths Lengths) error {
	if err := lengths.Validate(); err != nil {
		return err
	}
	if maxSize := lengths.MaxSize(); maxSize > maxEncoderSize {
		return fmt.Errorf("huffman: invalid bit length for encoder: got %d, max %d", maxSize, maxEncoderSize)
	}

	codes := make([]Code, len(lengths))
	for symbol, size := range lengths {
		codes[symbol].Size = size
	}
	assignCanonical(codes)

	*e = Encoder{
		codes:   codes,
		minSize: lengths.MinSize(),
		maxSize: lengths.MaxSize(),
	}
	return nil
}

// Encode encodes a Symbol into a Huffman-coded bit string.
func (e Encoder) Encode(symbol Symbol) Code {
	return e.codes[symbol]
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// MaxSymbol is the last Symbol in the code's alphabet.
//
// (The first Symbol in the code's alphabet is always 0.)
//
func (e Encoder) MaxSymbol() Symbol {
	return Symbol(len(e.codes)) - 1
}

// SizeBySymbol returns the bit length for each Symbol in the alphabet.  This
// table can be transmitted to another party to reconstruct this Huffman code
// on the receiving end.
//
func (e Encoder) SizeBySymbol() Lengths {
	out := make(Lengths, len(e.codes))
	for symbol, hc := range e.codes {
		out[symbol] = hc.Size
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol, hc := range e.codes {
		if hc.Size == 0 {
			fmt.Fprintf(&buf, "\tEncode(%d) = nil\n", symbol)
		} else {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func checkFrequencies(numSymbols int, frequencies []uint32) {
	checkAlphabet(numSymbols)
	assert.Assertf(numSymbols >= len(frequencies), "numSymbols %d < len(frequencies) %d", numSymbols, len(frequencies))
}

func padLengths(numSymbols int, lengths Lengths) Lengths {
	if len(lengths) == numSymbols {
		return lengths
	}
	out := make(Lengths, numSymbols)
	copy(out, lengths)
	return out
}

// assignCanonical transforms the (Symbol, codes[Symbol].Size) assignments
// into a canonical Huffman code written back to codes[Symbol].Bits.
func assignCanonical(codes []Code) {
	// Step 1: sort the symbols by (codes[Symbol].Size, Symbol) ascending.

	sorted := make(bySize, 0, len(codes))
	for symbol, hc := range codes {
		if hc.Size != 0 {
			sorted = append(sorted, symbolAndSize{Symbol(symbol), hc.Size})
		}
	}
	if len(sorted) == 0 {
		return
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		codes[item.symbol].Bits = nextCode
		nextCode++
	}
}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
