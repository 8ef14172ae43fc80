// Package fileio moves bit strings between files, streams and the codec.
//
// Bit strings are stored as plain ASCII '0'/'1' text with no trailing
// newline. On read, trailing ASCII whitespace is dropped before validation,
// so files produced by editors or `echo` are accepted; any other stray
// character is reported as an alphabet error with its position.
//
// Store works over an afero.Fs, so the same code runs against the OS
// filesystem in the CLI and an in-memory filesystem in tests.
package fileio

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/katalvlaran/grayknuth/bitstring"
	"github.com/katalvlaran/grayknuth/codec"
)

const filePerm os.FileMode = 0o644

// ReadBitString reads all of r and parses it as a bit string.
func ReadBitString(r io.Reader) (bitstring.BitString, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return bitstring.BitString{}, fmt.Errorf("ReadBitString: %w", err)
	}
	bs, err := bitstring.Parse(string(bytes.TrimRight(raw, " \t\r\n")))
	if err != nil {
		return bitstring.BitString{}, fmt.Errorf("ReadBitString: %w", err)
	}

	return bs, nil
}

// WriteBitString writes bs to w as ASCII text.
func WriteBitString(w io.Writer, bs bitstring.BitString) error {
	if _, err := io.WriteString(w, bs.String()); err != nil {
		return fmt.Errorf("WriteBitString: %w", err)
	}

	return nil
}

// Store encodes and decodes bit strings held in files.
type Store struct {
	fs    afero.Fs
	codec *codec.Codec
}

// NewStore returns a Store over fs. A nil c uses codec.New().
func NewStore(fs afero.Fs, c *codec.Codec) *Store {
	if fs == nil {
		panic("fileio: NewStore(nil fs)")
	}
	if c == nil {
		c = codec.New()
	}

	return &Store{fs: fs, codec: c}
}

// Read parses the bit string stored at path.
func (s *Store) Read(path string) (bitstring.BitString, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return bitstring.BitString{}, fmt.Errorf("Read(%s): %w", path, err)
	}
	defer f.Close()

	bs, err := ReadBitString(f)
	if err != nil {
		return bitstring.BitString{}, fmt.Errorf("Read(%s): %w", path, err)
	}

	return bs, nil
}

// Write stores bs at path, truncating any previous content.
func (s *Store) Write(path string, bs bitstring.BitString) error {
	if err := afero.WriteFile(s.fs, path, []byte(bs.String()), filePerm); err != nil {
		return fmt.Errorf("Write(%s): %w", path, err)
	}

	return nil
}

// EncodeFromFile reads a payload from path and returns its encoding.
func (s *Store) EncodeFromFile(path string) (bitstring.BitString, error) {
	in, err := s.Read(path)
	if err != nil {
		return bitstring.BitString{}, fmt.Errorf("EncodeFromFile: %w", err)
	}

	return s.codec.Encode(in)
}

// EncodeToFile encodes in and writes the encoding to path.
// Nothing is written when encoding fails.
func (s *Store) EncodeToFile(in bitstring.BitString, path string) error {
	enc, err := s.codec.Encode(in)
	if err != nil {
		return err
	}

	return s.Write(path, enc)
}

// DecodeFromFile reads an encoding from path and returns the payload.
func (s *Store) DecodeFromFile(path string, opts ...codec.DecodeOption) (bitstring.BitString, error) {
	enc, err := s.Read(path)
	if err != nil {
		return bitstring.BitString{}, fmt.Errorf("DecodeFromFile: %w", err)
	}

	return s.codec.Decode(enc, opts...)
}

// DecodeToFile decodes enc and writes the payload to path.
// Nothing is written when decoding fails.
func (s *Store) DecodeToFile(enc bitstring.BitString, path string, opts ...codec.DecodeOption) error {
	out, err := s.codec.Decode(enc, opts...)
	if err != nil {
		return err
	}

	return s.Write(path, out)
}
