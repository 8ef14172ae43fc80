package codec

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/grayknuth/bitstring"
	"github.com/katalvlaran/grayknuth/metrics"
)

// Option customizes a Codec at construction.
type Option func(*Codec)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("codec: WithLogger(nil)")
	}
	return func(c *Codec) {
		c.log = l
	}
}

// WithRecorder attaches a metrics recorder. Panics on nil; leave the
// option out to disable metrics.
func WithRecorder(r *metrics.Recorder) Option {
	if r == nil {
		panic("codec: WithRecorder(nil)")
	}
	return func(c *Codec) {
		c.rec = r
	}
}

// decodeConfig is the resolved set of DecodeOptions.
type decodeConfig struct {
	knownLength int
	hasLength   bool
	strict      bool
}

// DecodeOption customizes a single Decode or Inspect call.
type DecodeOption func(*decodeConfig)

// WithDecodedLength supplies the payload length when the caller already
// knows it, skipping the length search. The encoded length must still
// agree with it. Panics on negative n.
func WithDecodedLength(n int) DecodeOption {
	if n < 0 {
		panic("codec: WithDecodedLength(n<0)")
	}
	return func(c *decodeConfig) {
		c.knownLength = n
		c.hasLength = true
	}
}

// WithStrict additionally rejects encodings whose ones and zeros differ
// by more than one.
func WithStrict() DecodeOption {
	return func(c *decodeConfig) {
		c.strict = true
	}
}

func resolveDecode(opts []DecodeOption) decodeConfig {
	var cfg decodeConfig
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}

// Frame is an encoding split into its three fields, together with the
// trajectory step the Gray index field names.
//
//	| Prefix (DataLength) | IndexField | BalanceBit |
type Frame struct {
	// DataLength is the payload length n.
	DataLength int
	// Step is the trajectory step in [0, 2n] the encoder selected.
	Step int
	// Prefix is the payload as flipped at Step.
	Prefix bitstring.BitString
	// IndexField is the Gray codeword of Step, ceil(log2(2n+1)) bits.
	IndexField bitstring.BitString
	// BalanceBit is the trailing 0 or 1.
	BalanceBit byte
}

// Encoded reassembles the encoded BitString.
func (f Frame) Encoded() bitstring.BitString {
	return f.Prefix.Concat(f.IndexField).AppendBit(f.BalanceBit)
}

// Payload undoes the flip applied at Step and returns the original data.
//
//	Step ≤ n: the first Step bits were complemented.
//	Step > n: bits [Step-n, n) are still complemented.
func (f Frame) Payload() bitstring.BitString {
	n, i := f.DataLength, f.Step
	if i <= n {
		return f.Prefix.Slice(0, i).Complement().Concat(f.Prefix.Slice(i, n))
	}
	j := i - n

	return f.Prefix.Slice(0, j).Concat(f.Prefix.Slice(j, n).Complement())
}
