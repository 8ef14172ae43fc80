package codec

import (
	"fmt"

	"github.com/katalvlaran/grayknuth/bitstring"
	"github.com/katalvlaran/grayknuth/gray"
	"github.com/katalvlaran/grayknuth/length"
)

// inspect validates the layout of enc and splits it into a Frame.
//
// Steps:
//  1. n = Decoded(len(enc)), unless the caller supplied it.
//  2. IndexField = enc[n : len-1]; its width must equal GrayIndexWidth(n).
//  3. Step = Gray-decode(IndexField); must lie in [0, 2n].
//  4. Strict mode: enc must itself be balanced.
//
// Complexity: O(n).
func (c *Codec) inspect(enc bitstring.BitString, cfg decodeConfig) (Frame, error) {
	const method = "Decode"
	m := enc.Len()

	n := cfg.knownLength
	if !cfg.hasLength {
		var err error
		if n, err = length.Decoded(m); err != nil {
			return Frame{}, fmt.Errorf("%s: %w: %w", method, ErrMalformedInput, err)
		}
	}

	width := length.GrayIndexWidth(n)
	if m-1 < n {
		return Frame{}, malformedf(method, "%d bits cannot hold a %d-bit payload", m, n)
	}
	field := enc.Slice(n, m-1)
	if field.Len() != width {
		return Frame{}, malformedf(method, "index field is %d bits, want %d for n=%d", field.Len(), width, n)
	}

	step, err := gray.Decode(field)
	if err != nil {
		return Frame{}, malformedf(method, "%v", err)
	}
	if step > 2*n {
		return Frame{}, malformedf(method, "step %d exceeds trajectory end %d", step, 2*n)
	}
	if cfg.strict && !enc.IsBalanced() {
		return Frame{}, malformedf(method, "weight imbalance %d", enc.Imbalance())
	}

	return Frame{
		DataLength: n,
		Step:       step,
		Prefix:     enc.Slice(0, n),
		IndexField: field,
		BalanceBit: enc.At(m - 1),
	}, nil
}
