// Package gray generates reflected binary Gray codewords and converts them
// back to their integer index.
//
// 🚀 What is a reflected binary Gray code?
//
//	An ordering of all 2^L values of width L in which consecutive values
//	differ in exactly one bit position:
//
//	  L=3:  000 001 011 010 110 111 101 100
//
//	Codeword i is i XOR (i >> 1). grayknuth relies on the one-bit
//	adjacency contract: walking from codeword i to i+1 changes the weight of
//	the codeword by exactly ±1.
//
// ✨ Key features:
//   - Sequence: a restartable, finite, stateless view of all 2^L codewords
//   - Codeword: random access to codeword i, no tables, no caches
//   - Decode: MSB-first Gray-to-binary conversion of a codeword BitString
//   - ChangedBit: the bit that flips between codewords i and i+1
//
// Codewords are rendered most-significant bit first. Width 0 is valid and
// yields a single empty codeword.
//
// Complexity:
//
//   - Codeword, Decode: O(L).
//   - ToGray, FromGray, ChangedBit: O(1).
//
// Errors:
//
//   - ErrWidthOutOfRange: width is negative or above MaxWidth.
//   - ErrIndexOutOfRange: index is outside [0, 2^width).
package gray
