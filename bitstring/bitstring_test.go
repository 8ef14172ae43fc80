package bitstring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grayknuth/bitstring"
)

//----------------------------------------------------------------------------//
// Parse / Validate
//----------------------------------------------------------------------------//

// TestParse_InvalidAlphabet verifies the first offending character and its position are reported.
func TestParse_InvalidAlphabet(t *testing.T) {
	cases := []struct {
		name string
		in   string
		pos  int
		char rune
	}{
		{"Letter", "10a1", 2, 'a'},
		{"LeadingSpace", " 01", 0, ' '},
		{"TrailingNewline", "0101\n", 4, '\n'},
		{"Digit", "0120", 2, '2'},
		{"MultiByteRune", "0é1x", 1, 'é'},
		{"RuneIndexNotByteOffset", "01é", 2, 'é'},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := bitstring.Parse(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, bitstring.ErrInvalidAlphabet)

			var ae *bitstring.AlphabetError
			require.True(t, errors.As(err, &ae), "error should be *AlphabetError")
			assert.Equal(t, tc.pos, ae.Pos)
			assert.Equal(t, tc.char, ae.Char)
		})
	}
}

// TestParse_Valid checks accepted inputs round-trip through String.
func TestParse_Valid(t *testing.T) {
	for _, s := range []string{"", "0", "1", "0101110", "11111111"} {
		bs, err := bitstring.Parse(s)
		require.NoError(t, err, "Parse(%q)", s)
		assert.Equal(t, s, bs.String())
		assert.Equal(t, len(s), bs.Len())
	}
}

// TestMustParse_Panics ensures MustParse panics on bad input.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { bitstring.MustParse("01x") })
	assert.NotPanics(t, func() { bitstring.MustParse("01") })
}

// TestFromBits covers numeric construction and rejection of values above 1.
func TestFromBits(t *testing.T) {
	bs, err := bitstring.FromBits([]byte{1, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "1001", bs.String())

	_, err = bitstring.FromBits([]byte{0, 2})
	assert.ErrorIs(t, err, bitstring.ErrInvalidAlphabet)
}

//----------------------------------------------------------------------------//
// Value operations
//----------------------------------------------------------------------------//

// TestCounts verifies Ones, Zeros, Imbalance and IsBalanced.
func TestCounts(t *testing.T) {
	cases := []struct {
		in        string
		ones      int
		imbalance int
		balanced  bool
	}{
		{"", 0, 0, true},
		{"1", 1, 1, true},
		{"0", 0, -1, true},
		{"0011", 2, 0, true},
		{"111", 3, 3, false},
		{"00010", 1, -3, false},
	}
	for _, tc := range cases {
		bs := bitstring.MustParse(tc.in)
		assert.Equal(t, tc.ones, bs.Ones(), "Ones(%q)", tc.in)
		assert.Equal(t, len(tc.in)-tc.ones, bs.Zeros(), "Zeros(%q)", tc.in)
		assert.Equal(t, tc.imbalance, bs.Imbalance(), "Imbalance(%q)", tc.in)
		assert.Equal(t, tc.balanced, bs.IsBalanced(), "IsBalanced(%q)", tc.in)
	}
}

// TestComplementSliceConcat exercises the structural helpers.
func TestComplementSliceConcat(t *testing.T) {
	bs := bitstring.MustParse("110100")

	assert.Equal(t, "001011", bs.Complement().String())
	assert.Equal(t, bs, bs.Complement().Complement(), "double complement is identity")
	assert.Equal(t, "010", bs.Slice(2, 5).String())
	assert.Equal(t, "", bs.Slice(3, 3).String())

	joined := bs.Slice(0, 2).Concat(bitstring.MustParse("0"), bs.Slice(3, 6))
	assert.Equal(t, "110100", joined.String())
	assert.Equal(t, bs, joined, "BitString values compare with ==")
	assert.Equal(t, bs, bs.Concat())

	assert.Equal(t, "1101001", bs.AppendBit(1).String())
	assert.Equal(t, "1101000", bs.AppendBit(0).String())
	assert.Equal(t, byte(1), bs.At(0))
	assert.Equal(t, byte(0), bs.At(2))
}

// TestZeroValue checks the zero BitString is the empty string.
func TestZeroValue(t *testing.T) {
	var bs bitstring.BitString
	assert.True(t, bs.IsEmpty())
	assert.Equal(t, 0, bs.Len())
	assert.Equal(t, bitstring.MustParse(""), bs)
}

//----------------------------------------------------------------------------//
// Buffer
//----------------------------------------------------------------------------//

// TestBuffer_Flip verifies in-place flips keep the running ones count exact
// and never alias the source BitString.
func TestBuffer_Flip(t *testing.T) {
	src := bitstring.MustParse("1010")
	buf := bitstring.NewBuffer(src)
	require.Equal(t, 2, buf.Ones())
	require.Equal(t, 4, buf.Len())

	assert.Equal(t, byte(0), buf.Flip(0))
	assert.Equal(t, 1, buf.Ones())
	assert.Equal(t, byte(1), buf.Flip(1))
	assert.Equal(t, 2, buf.Ones())
	assert.Equal(t, byte(1), buf.At(1))

	assert.Equal(t, "0110", buf.Snapshot().String())
	assert.Equal(t, "1010", src.String(), "source must be untouched")

	snap := buf.Snapshot()
	buf.Flip(3)
	assert.Equal(t, "0110", snap.String(), "snapshot must be untouched by later flips")
	assert.Equal(t, buf.Snapshot().Ones(), buf.Ones())
}
