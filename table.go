package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// maxCodeSize is the longest code length a Lengths table can hold.
const maxCodeSize = math.MaxUint8

// Lengths holds the code length, in bits, of each Symbol in an alphabet.  A
// length of 0 means the symbol has no code.
type Lengths []byte

// KraftStatus classifies a Lengths table by its Kraft sum, sum(2**-length)
// over the symbols that have a code.
type KraftStatus byte

const (
	// KraftEmpty means no symbol has a code.
	KraftEmpty KraftStatus = iota

	// KraftComplete means the sum is exactly 1: every bit string is a
	// prefix of some code.
	KraftComplete

	// KraftIncomplete means the sum is less than 1: the code is prefix
	// free, but some bit strings are unused.
	KraftIncomplete

	// KraftOversubscribed means the sum exceeds 1: no prefix code has
	// these lengths.
	KraftOversubscribed
)

var kraftStatusNames = [...]string{
	KraftEmpty:          "empty",
	KraftComplete:       "complete",
	KraftIncomplete:     "incomplete",
	KraftOversubscribed: "oversubscribed",
}

// String returns the string representation of this KraftStatus.
func (s KraftStatus) String() string {
	if int(s) < len(kraftStatusNames) {
		return kraftStatusNames[s]
	}
	return fmt.Sprintf("KraftStatus(%d)", byte(s))
}

var _ fmt.Stringer = KraftStatus(0)

// NumSymbols returns the number of symbols that have a code.
func (ls Lengths) NumSymbols() int {
	var n int
	for _, size := range ls {
		if size != 0 {
			n++
		}
	}
	return n
}

// MinSize is the bit length of the shortest code, or 0 if there are none.
func (ls Lengths) MinSize() byte {
	var minSize byte
	for _, size := range ls {
		if size != 0 && (minSize == 0 || size < minSize) {
			minSize = size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code, or 0 if there are none.
func (ls Lengths) MaxSize() byte {
	var maxSize byte
	for _, size := range ls {
		if size > maxSize {
			maxSize = size
		}
	}
	return maxSize
}

// Kraft computes the Kraft sum of this table exactly and classifies it.
func (ls Lengths) Kraft() KraftStatus {
	var countArray [maxCodeSize + 1]uint64
	var numSymbols uint64
	for _, size := range ls {
		if size != 0 {
			countArray[size]++
			numSymbols++
		}
	}
	if numSymbols == 0 {
		return KraftEmpty
	}

	// Walk down the implicit tree one level at a time, tracking how many
	// nodes at the current depth are still free.  Once there are more
	// free nodes than remaining symbols, the code can't be complete or
	// oversubscribed any more, and the count may stop growing.
	free := uint64(1)
	remaining := numSymbols
	for size := 1; size <= maxCodeSize; size++ {
		if free <= remaining {
			free <<= 1
		}
		count := countArray[size]
		if count > free {
			return KraftOversubscribed
		}
		free -= count
		remaining -= count
		if remaining == 0 {
			break
		}
	}
	if free == 0 {
		return KraftComplete
	}
	return KraftIncomplete
}

// Validate returns an error if no prefix code has these lengths.
func (ls Lengths) Validate() error {
	if len(ls)-1 > int(MaxSymbol) {
		return fmt.Errorf("huffman: too many symbols: got %d, max %d", len(ls), int64(MaxSymbol)+1)
	}
	if ls.Kraft() == KraftOversubscribed {
		return fmt.Errorf("huffman: oversubscribed code lengths: %d symbols with lengths %d .. %d", ls.NumSymbols(), ls.MinSize(), ls.MaxSize())
	}
	return nil
}

// WeightedLength returns sum(weights[i] * lengths[i]), the number of bits
// needed to encode a message with the given symbol counts.  The sum
// saturates at math.MaxUint64.  Symbols beyond the end of either slice
// contribute nothing.
func WeightedLength[W Weight](weights []W, lengths Lengths) uint64 {
	n := len(weights)
	if n > len(lengths) {
		n = len(lengths)
	}
	var total uint64
	for i := 0; i < n; i++ {
		total = addSaturating(total, mulSaturating(uint64(weights[i]), uint64(lengths[i])))
	}
	return total
}

// String returns a one-line summary of this table.
func (ls Lengths) String() string {
	return fmt.Sprintf("(Huffman lengths for %d symbols, %d coded, lengths %d .. %d bits, %v)",
		len(ls), ls.NumSymbols(), ls.MinSize(), ls.MaxSize(), ls.Kraft())
}

// Dump writes a programmer-readable debugging dump of this table to the
// given writer.
func (ls Lengths) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Lengths{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ls.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ls.MaxSize())
	fmt.Fprintf(&buf, "\tKraft() = %v\n", ls.Kraft())
	for symbol, size := range ls {
		if size != 0 {
			fmt.Fprintf(&buf, "\tSize(%d) = %d\n", symbol, size)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = Lengths(nil)
