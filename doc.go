// Package huffman computes code lengths for canonical Huffman codes.  These
// are useful for DEFLATE and other compression algorithms, which transmit
// only the bit length of each symbol and let the receiver rebuild the code.
//
// Two generators are provided.  GenerateLengths produces classically optimal
// lengths with no upper bound.  GenerateLimitedLengths produces the optimal
// lengths subject to a maximum code length, using the package-merge
// algorithm.
//
// Among symbols of equal weight, which symbol receives which length is not
// part of the contract.  The weighted length of the result is.
//
// References:
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
//     <https://en.wikipedia.org/wiki/Canonical_Huffman_code>
//
//     Larmore and Hirschberg, "A fast algorithm for optimal length-limited
//     Huffman codes", JACM 37(3), 1990.
//
package huffman
