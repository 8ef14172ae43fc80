package gray

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
	"strings"

	"github.com/katalvlaran/grayknuth/bitstring"
)

// MaxWidth is the widest codeword this package indexes with a native int.
const MaxWidth = 62

var (
	// ErrWidthOutOfRange indicates a codeword width outside [0, MaxWidth].
	ErrWidthOutOfRange = errors.New("gray: width out of range")
	// ErrIndexOutOfRange indicates a codeword index outside [0, 2^width).
	ErrIndexOutOfRange = errors.New("gray: index out of range")
)

// ToGray converts a binary index to its reflected Gray value.
func ToGray(v uint64) uint64 {
	return v ^ (v >> 1)
}

// FromGray converts a reflected Gray value back to its binary index.
func FromGray(g uint64) uint64 {
	g ^= g >> 32
	g ^= g >> 16
	g ^= g >> 8
	g ^= g >> 4
	g ^= g >> 2
	g ^= g >> 1

	return g
}

// ChangedBit returns the bit offset, counted from the least significant
// bit, that differs between ToGray(v) and ToGray(v+1).
// The following always holds: ToGray(v) ^ 1<<ChangedBit(v) == ToGray(v+1).
func ChangedBit(v uint64) int {
	// Gray(v)^Gray(v+1) == Gray(v^(v+1)) has a single set bit.
	return bits.TrailingZeros64(^v)
}

// Codeword returns codeword number index of the width-bit reflected Gray
// code, most significant bit first.
func Codeword(width, index int) (bitstring.BitString, error) {
	if width < 0 || width > MaxWidth {
		return bitstring.BitString{}, fmt.Errorf("Codeword(%d, %d): %w", width, index, ErrWidthOutOfRange)
	}
	if index < 0 || index >= 1<<width {
		return bitstring.BitString{}, fmt.Errorf("Codeword(%d, %d): %w", width, index, ErrIndexOutOfRange)
	}

	return render(width, ToGray(uint64(index))), nil
}

// Decode returns the index of codeword cw within the reflected Gray code of
// width cw.Len(): out[0] = cw[0], out[k] = out[k-1] XOR cw[k].
func Decode(cw bitstring.BitString) (int, error) {
	if cw.Len() > MaxWidth {
		return 0, fmt.Errorf("Decode: %d-bit codeword: %w", cw.Len(), ErrWidthOutOfRange)
	}
	var out, prev uint64
	for k := 0; k < cw.Len(); k++ {
		prev ^= uint64(cw.At(k))
		out = out<<1 | prev
	}

	return int(out), nil
}

// render writes the low width bits of v, most significant first.
func render(width int, v uint64) bitstring.BitString {
	var sb strings.Builder
	sb.Grow(width)
	for k := width - 1; k >= 0; k-- {
		if v>>uint(k)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return bitstring.MustParse(sb.String())
}

// Sequence is the ordered list of all 2^Width reflected Gray codewords.
// It is a plain value: iterating it twice yields the same codewords.
type Sequence struct {
	width int
}

// Generate returns the codeword sequence of the given width.
// Panics if width is outside [0, MaxWidth]; no addressable input needs more.
func Generate(width int) Sequence {
	if width < 0 || width > MaxWidth {
		panic(fmt.Sprintf("gray: Generate(%d): width out of range", width))
	}

	return Sequence{width: width}
}

// Width returns the codeword width.
func (s Sequence) Width() int { return s.width }

// Len returns the number of codewords, 2^Width.
func (s Sequence) Len() int { return 1 << s.width }

// At returns codeword i.
func (s Sequence) At(i int) (bitstring.BitString, error) {
	return Codeword(s.width, i)
}

// All yields (index, codeword) pairs in Gray order starting at all-zero.
// Each codeword is derived from its predecessor by a single bit flip.
func (s Sequence) All() iter.Seq2[int, bitstring.BitString] {
	return func(yield func(int, bitstring.BitString) bool) {
		var g uint64
		n := s.Len()
		for i := 0; i < n; i++ {
			if i > 0 {
				g ^= 1 << uint(ChangedBit(uint64(i-1)))
			}
			if !yield(i, render(s.width, g)) {
				return
			}
		}
	}
}
