package bitstring

import (
	"strings"
)

const (
	zero = '0'
	one  = '1'
)

// BitString is an immutable ordered sequence of bits.
// The zero value is the empty string.
type BitString struct {
	s string
}

// Validate checks that every character of s is '0' or '1'.
// Returns an *AlphabetError (matching ErrInvalidAlphabet) for the first
// offending character.
// Complexity: O(len(s)).
func Validate(s string) error {
	pos := 0
	for _, r := range s {
		if r != zero && r != one {
			return &AlphabetError{Pos: pos, Char: r}
		}
		pos++
	}

	return nil
}

// Parse validates s and returns it as a BitString.
// Complexity: O(len(s)).
func Parse(s string) (BitString, error) {
	if err := Validate(s); err != nil {
		return BitString{}, err
	}

	return BitString{s: s}, nil
}

// MustParse is like Parse but panics on invalid input.
// Intended for tests, examples and constants.
func MustParse(s string) BitString {
	bs, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return bs
}

// FromBits builds a BitString from a slice of 0/1 values.
// Any value other than 0 or 1 yields an *AlphabetError.
func FromBits(bits []byte) (BitString, error) {
	buf := make([]byte, len(bits))
	for i, b := range bits {
		switch b {
		case 0:
			buf[i] = zero
		case 1:
			buf[i] = one
		default:
			return BitString{}, &AlphabetError{Pos: i, Char: rune(b)}
		}
	}

	return BitString{s: string(buf)}, nil
}

// Len returns the number of bits.
func (b BitString) Len() int { return len(b.s) }

// IsEmpty reports whether b has no bits.
func (b BitString) IsEmpty() bool { return len(b.s) == 0 }

// At returns the bit at position i as 0 or 1.
// Panics if i is out of range, like a slice index.
func (b BitString) At(i int) byte { return b.s[i] - zero }

// String returns the '0'/'1' text form.
func (b BitString) String() string { return b.s }

// Ones counts the 1 bits.
// Complexity: O(n).
func (b BitString) Ones() int {
	return strings.Count(b.s, string(one))
}

// Zeros counts the 0 bits.
func (b BitString) Zeros() int { return b.Len() - b.Ones() }

// Imbalance returns ones minus zeros.
func (b BitString) Imbalance() int { return 2*b.Ones() - b.Len() }

// IsBalanced reports whether the counts of ones and zeros differ by at most one.
func (b BitString) IsBalanced() bool {
	d := b.Imbalance()

	return d >= -1 && d <= 1
}

// Slice returns bits [i, j). Panics on invalid bounds, like a slice expression.
func (b BitString) Slice(i, j int) BitString { return BitString{s: b.s[i:j]} }

// Complement returns b with every bit inverted.
// Complexity: O(n).
func (b BitString) Complement() BitString {
	buf := []byte(b.s)
	for i := range buf {
		buf[i] ^= 1 // '0' (0x30) <-> '1' (0x31)
	}

	return BitString{s: string(buf)}
}

// Concat returns b followed by each of others, in order.
func (b BitString) Concat(others ...BitString) BitString {
	if len(others) == 0 {
		return b
	}
	n := len(b.s)
	for _, o := range others {
		n += len(o.s)
	}
	var sb strings.Builder
	sb.Grow(n)
	sb.WriteString(b.s)
	for _, o := range others {
		sb.WriteString(o.s)
	}

	return BitString{s: sb.String()}
}

// AppendBit returns b with a single trailing bit (0 or 1).
func (b BitString) AppendBit(bit byte) BitString {
	return BitString{s: b.s + string(rune(zero+(bit&1)))}
}
