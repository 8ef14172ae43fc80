package codec

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/grayknuth/bitstring"
	"github.com/katalvlaran/grayknuth/metrics"
)

// Codec runs encode and decode with optional logging and metrics.
// The zero value is not usable; construct with New.
type Codec struct {
	log *zap.Logger
	rec *metrics.Recorder
}

// New returns a Codec. Without options it logs nowhere and records nothing.
func New(opts ...Option) *Codec {
	c := &Codec{log: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}

	return c
}

// Encode returns the balanced encoding of in.
func (c *Codec) Encode(in bitstring.BitString) (bitstring.BitString, error) {
	f, err := c.EncodeFrame(in)
	if err != nil {
		return bitstring.BitString{}, err
	}

	return f.Encoded(), nil
}

// Decode recovers the payload from an encoding.
func (c *Codec) Decode(enc bitstring.BitString, opts ...DecodeOption) (bitstring.BitString, error) {
	f, err := c.inspect(enc, resolveDecode(opts))
	if err != nil {
		c.rec.ObserveDecode(0, resultOf(err))
		c.log.Debug("decode rejected", zap.Int("encoded_len", enc.Len()), zap.Error(err))

		return bitstring.BitString{}, err
	}
	c.rec.ObserveDecode(f.DataLength, metrics.ResultOK)
	c.log.Debug("decoded",
		zap.Int("n", f.DataLength),
		zap.Int("width", f.IndexField.Len()),
		zap.Int("step", f.Step))

	return f.Payload(), nil
}

// Inspect splits an encoding into its fields without recovering the payload.
// It applies the same checks as Decode.
func (c *Codec) Inspect(enc bitstring.BitString, opts ...DecodeOption) (Frame, error) {
	return c.inspect(enc, resolveDecode(opts))
}

// EncodeString validates s and returns its encoding as text.
func (c *Codec) EncodeString(s string) (string, error) {
	in, err := bitstring.Parse(s)
	if err != nil {
		c.rec.ObserveEncode(0, 0, resultOf(err))

		return "", err
	}
	out, err := c.Encode(in)
	if err != nil {
		return "", err
	}

	return out.String(), nil
}

// DecodeString validates s and returns the decoded payload as text.
func (c *Codec) DecodeString(s string, opts ...DecodeOption) (string, error) {
	enc, err := bitstring.Parse(s)
	if err != nil {
		c.rec.ObserveDecode(0, resultOf(err))

		return "", err
	}
	out, err := c.Decode(enc, opts...)
	if err != nil {
		return "", err
	}

	return out.String(), nil
}

var std = New()

// Encode encodes in with the default Codec.
func Encode(in bitstring.BitString) (bitstring.BitString, error) { return std.Encode(in) }

// EncodeFrame encodes in with the default Codec and returns the fields.
func EncodeFrame(in bitstring.BitString) (Frame, error) { return std.EncodeFrame(in) }

// Decode decodes enc with the default Codec.
func Decode(enc bitstring.BitString, opts ...DecodeOption) (bitstring.BitString, error) {
	return std.Decode(enc, opts...)
}

// Inspect splits enc with the default Codec.
func Inspect(enc bitstring.BitString, opts ...DecodeOption) (Frame, error) {
	return std.Inspect(enc, opts...)
}

// EncodeString encodes s with the default Codec.
func EncodeString(s string) (string, error) { return std.EncodeString(s) }

// DecodeString decodes s with the default Codec.
func DecodeString(s string, opts ...DecodeOption) (string, error) {
	return std.DecodeString(s, opts...)
}
