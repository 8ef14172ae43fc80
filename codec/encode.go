package codec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/grayknuth/bitstring"
	"github.com/katalvlaran/grayknuth/gray"
	"github.com/katalvlaran/grayknuth/length"
)

// EncodeFrame runs the flip trajectory over in and returns the selected
// step's fields. Frame.Encoded gives the balanced encoding.
//
// Algorithm:
//  1. L = GrayIndexWidth(n); flipped = copy of in; g = codeword 0 (all zero).
//  2. For step i = 0..2n:
//     i in [1, n]:  complement flipped[i-1]
//     i in (n, 2n]: complement flipped[i-n-1]
//     i > 0:        move g to codeword i (one bit)
//     d = ones − zeros of flipped ++ g
//     d in [0, 2] → balance bit 0; d in [-2, -1] → balance bit 1; stop.
//  3. Exhausted walk → ErrEncodingInvariantViolated.
//
// Only the flipped bit and the changed codeword bit are touched per step.
// Complexity: O(n) time, O(n) memory.
func (c *Codec) EncodeFrame(in bitstring.BitString) (Frame, error) {
	f, err := walk(in)
	c.rec.ObserveEncode(in.Len(), f.Step, resultOf(err))
	if err != nil {
		c.log.Error("encode failed", zap.Int("n", in.Len()), zap.Error(err))

		return Frame{}, err
	}
	c.log.Debug("encoded",
		zap.Int("n", f.DataLength),
		zap.Int("width", f.IndexField.Len()),
		zap.Int("step", f.Step))

	return f, nil
}

// walk is the trajectory search behind EncodeFrame.
func walk(in bitstring.BitString) (Frame, error) {
	n := in.Len()
	width := length.GrayIndexWidth(n)
	seq := gray.Generate(width)
	total := n + width

	flipped := bitstring.NewBuffer(in)
	var g uint64 // codeword of the current step
	gOnes := 0

	for i := 0; i < length.Steps(n); i++ {
		if i > 0 {
			if i <= n {
				flipped.Flip(i - 1)
			} else {
				flipped.Flip(i - n - 1)
			}
			b := uint(gray.ChangedBit(uint64(i - 1)))
			g ^= 1 << b
			if g>>b&1 == 1 {
				gOnes++
			} else {
				gOnes--
			}
		}

		bit, ok := balanceBit(2*(flipped.Ones()+gOnes) - total)
		if !ok {
			continue
		}
		cw, err := seq.At(i)
		if err != nil {
			return Frame{}, fmt.Errorf("EncodeFrame: step %d: %w: %w", i, ErrEncodingInvariantViolated, err)
		}

		return Frame{
			DataLength: n,
			Step:       i,
			Prefix:     flipped.Snapshot(),
			IndexField: cw,
			BalanceBit: bit,
		}, nil
	}

	return Frame{}, fmt.Errorf("EncodeFrame: n=%d width=%d: %w", n, width, ErrEncodingInvariantViolated)
}

// balanceBit picks the trailing bit for a candidate whose ones−zeros is d.
// ok is false when one bit cannot bring the candidate within ±1.
func balanceBit(d int) (bit byte, ok bool) {
	switch {
	case d >= 0 && d <= 2:
		return 0, true
	case d >= -2 && d <= -1:
		return 1, true
	default:
		return 0, false
	}
}
