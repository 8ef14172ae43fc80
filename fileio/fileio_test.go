package fileio_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grayknuth/bitstring"
	"github.com/katalvlaran/grayknuth/codec"
	"github.com/katalvlaran/grayknuth/fileio"
)

//------------------------------------------------------------------------------//
// Streams
//------------------------------------------------------------------------------//

func TestReadBitString(t *testing.T) {
	bs, err := fileio.ReadBitString(strings.NewReader("0101\n"))
	require.NoError(t, err)
	assert.Equal(t, "0101", bs.String())

	_, err = fileio.ReadBitString(strings.NewReader(" 01\n"))
	require.ErrorIs(t, err, bitstring.ErrInvalidAlphabet, "leading whitespace is not trimmed")

	bs, err = fileio.ReadBitString(strings.NewReader(" \r\n"))
	require.NoError(t, err)
	assert.True(t, bs.IsEmpty())

	_, err = fileio.ReadBitString(strings.NewReader("01x1\n"))
	require.ErrorIs(t, err, bitstring.ErrInvalidAlphabet)
	var ae *bitstring.AlphabetError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, 2, ae.Pos)
}

func TestWriteBitString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fileio.WriteBitString(&buf, bitstring.MustParse("1001")))
	assert.Equal(t, "1001", buf.String())
}

//------------------------------------------------------------------------------//
// Store
//------------------------------------------------------------------------------//

func newStore(t *testing.T) (*fileio.Store, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()

	return fileio.NewStore(fs, nil), fs
}

func TestStore_EncodeRoundTrip(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, afero.WriteFile(fs, "/data/in.txt", []byte("0000000\n"), 0o644))

	enc, err := s.EncodeFromFile("/data/in.txt")
	require.NoError(t, err)
	assert.Equal(t, "111100001100", enc.String())

	require.NoError(t, s.EncodeToFile(bitstring.MustParse("0000000"), "/data/enc.txt"))
	raw, err := afero.ReadFile(fs, "/data/enc.txt")
	require.NoError(t, err)
	assert.Equal(t, "111100001100", string(raw), "no trailing newline")

	out, err := s.DecodeFromFile("/data/enc.txt")
	require.NoError(t, err)
	assert.Equal(t, "0000000", out.String())

	require.NoError(t, s.DecodeToFile(enc, "/data/out.txt"))
	raw, err = afero.ReadFile(fs, "/data/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "0000000", string(raw))
}

func TestStore_DecodeOptions(t *testing.T) {
	s, fs := newStore(t)
	require.NoError(t, afero.WriteFile(fs, "enc.txt", []byte("00011111000101"), 0o644))

	out, err := s.DecodeFromFile("enc.txt", codec.WithDecodedLength(8))
	require.NoError(t, err)
	assert.Equal(t, "11111111", out.String())

	_, err = s.DecodeFromFile("enc.txt", codec.WithDecodedLength(7))
	assert.ErrorIs(t, err, codec.ErrMalformedInput)
}

func TestStore_Errors(t *testing.T) {
	s, fs := newStore(t)

	_, err := s.EncodeFromFile("missing.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, afero.WriteFile(fs, "bad.txt", []byte("10a1"), 0o644))
	_, err = s.EncodeFromFile("bad.txt")
	assert.ErrorIs(t, err, codec.ErrInvalidAlphabet)

	require.NoError(t, afero.WriteFile(fs, "short.txt", []byte("01"), 0o644))
	_, err = s.DecodeFromFile("short.txt")
	assert.ErrorIs(t, err, codec.ErrMalformedInput)

	err = s.DecodeToFile(bitstring.MustParse("01"), "never.txt")
	assert.ErrorIs(t, err, codec.ErrMalformedInput)
	exists, err := afero.Exists(fs, "never.txt")
	require.NoError(t, err)
	assert.False(t, exists, "failed decode must not create the file")
}

func TestStore_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	s := fileio.NewStore(fs, codec.New())
	err := s.EncodeToFile(bitstring.MustParse("1"), "out.txt")
	assert.Error(t, err)
}

func TestNewStore_NilFsPanics(t *testing.T) {
	assert.Panics(t, func() { fileio.NewStore(nil, nil) })
}
