package huffman

import (
	"errors"
	"fmt"
)

// ErrInfeasible is matched (via errors.Is) by every error reporting that a
// length limit cannot accommodate the alphabet.
var ErrInfeasible = errors.New("huffman: length limit is infeasible")

// LimitError is returned by GenerateLimitedLengths and Encoder.InitLimited
// when NumSymbols symbols with non-zero weight cannot be given distinct
// codes of at most MaxSize bits.
type LimitError struct {
	NumSymbols int
	MaxSize    int
}

// Error returns the error message.
func (err *LimitError) Error() string {
	if err.MaxSize < 1 {
		return fmt.Sprintf("huffman: invalid maximum code length for %d symbols: got %d, min 1", err.NumSymbols, err.MaxSize)
	}
	return fmt.Sprintf("huffman: maximum code length too small for %d symbols: got %d, min %d", err.NumSymbols, err.MaxSize, minSizeFor(err.NumSymbols))
}

// Is returns true for ErrInfeasible.
func (err *LimitError) Is(target error) bool {
	return target == ErrInfeasible
}

var _ error = (*LimitError)(nil)
