// SPDX-License-Identifier: MIT
// Package: grayknuth/codec
//
// errors.go: sentinel errors for the codec package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Context is attached with %w at the failure site, never baked into
//     the sentinel text.
//   • Decode failures are deterministic functions of the input: there is
//     nothing to retry and no partial result is returned.

package codec

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grayknuth/bitstring"
	"github.com/katalvlaran/grayknuth/length"
	"github.com/katalvlaran/grayknuth/metrics"
)

// ErrInvalidAlphabet indicates the input holds a character other than '0' or '1'.
// It is the bitstring sentinel; errors.As with *bitstring.AlphabetError
// yields the offending position and character.
var ErrInvalidAlphabet = bitstring.ErrInvalidAlphabet

// ErrMalformedInput indicates the encoded string was not produced by this
// codec or was corrupted: its length matches no payload length, its Gray
// index field has the wrong width, or the recovered step exceeds 2n.
var ErrMalformedInput = errors.New("codec: malformed encoded input")

// ErrEncodingInvariantViolated indicates the flip trajectory produced no
// balanced candidate. Unreachable while GrayIndexWidth and the trajectory
// agree; seeing it means the length arithmetic is broken.
var ErrEncodingInvariantViolated = errors.New("codec: no balancing step found on trajectory")

// malformedf wraps ErrMalformedInput with method context.
func malformedf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", method, ErrMalformedInput, fmt.Sprintf(format, args...))
}

// resultOf classifies err for the metrics recorder.
func resultOf(err error) metrics.Result {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrInvalidAlphabet):
		return metrics.ResultInvalidAlphabet
	case errors.Is(err, ErrMalformedInput), errors.Is(err, length.ErrMalformedLength):
		return metrics.ResultMalformed
	default:
		return metrics.ResultError
	}
}
