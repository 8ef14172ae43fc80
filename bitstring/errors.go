package bitstring

import (
	"errors"
	"fmt"
)

// ErrInvalidAlphabet indicates the input holds a character other than '0' or '1'.
var ErrInvalidAlphabet = errors.New("bitstring: input must contain only '0' and '1'")

// AlphabetError reports the first character outside the binary alphabet.
// Pos is the 0-based character (rune) index of Char in the input.
type AlphabetError struct {
	Pos  int
	Char rune
}

// Error implements the error interface.
func (e *AlphabetError) Error() string {
	return fmt.Sprintf("%v: illegal character %q at position %d", ErrInvalidAlphabet, e.Char, e.Pos)
}

// Unwrap exposes ErrInvalidAlphabet to errors.Is.
func (e *AlphabetError) Unwrap() error {
	return ErrInvalidAlphabet
}
