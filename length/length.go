// Package length holds the index-length arithmetic that makes a grayknuth
// encoding self-describing.
//
// For a payload of n bits the encoder walks 2n+1 trajectory steps, so the
// step index needs GrayIndexWidth(n) = ceil(log2(2n+1)) bits, and the full
// encoding is Encoded(n) = n + GrayIndexWidth(n) + 1 bits long (payload,
// Gray index field, balance bit).
//
// Encoded is non-decreasing in n (a step function plus the identity), so
// Decoded inverts it with a closed-interval binary search.
//
//	n:        0  1  2  3  4  5  6  7  8
//	width:    0  2  3  3  4  4  4  4  5
//	encoded:  1  4  6  7  9 10 11 12 14
//
// Lengths such as 2, 3, 5, 8 and 13 are never produced; Decoded rejects
// them with ErrMalformedLength.
package length

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrMalformedLength indicates no payload length encodes to the given length.
var ErrMalformedLength = errors.New("length: not a valid encoded length")

// GrayIndexWidth returns ceil(log2(2n+1)), the bits needed to index all
// 2n+1 trajectory steps. Returns 0 for n <= 0.
func GrayIndexWidth(n int) int {
	if n <= 0 {
		return 0
	}
	// ceil(log2(m)) == bits.Len(m-1) for m >= 1.
	return bits.Len(uint(2 * n))
}

// Steps returns the trajectory length 2n+1.
func Steps(n int) int { return 2*n + 1 }

// Encoded returns the encoded length n + GrayIndexWidth(n) + 1.
// Panics if n is negative.
func Encoded(n int) int {
	if n < 0 {
		panic(fmt.Sprintf("length: Encoded(%d): negative length", n))
	}

	return n + GrayIndexWidth(n) + 1
}

// Decoded returns the payload length n with Encoded(n) == m.
// Complexity: O(log m).
func Decoded(m int) (int, error) {
	lo, hi := 0, m
	for lo <= hi {
		mid := lo + (hi-lo)/2
		e := Encoded(mid)
		switch {
		case e == m:
			return mid, nil
		case m < e:
			hi = mid - 1
		default:
			lo = mid + 1
		}
	}

	return 0, fmt.Errorf("Decoded(%d): %w", m, ErrMalformedLength)
}

// IsEncodedLength reports whether m is the length of some encoding.
func IsEncodedLength(m int) bool {
	_, err := Decoded(m)

	return err == nil
}
