// Package bitstring defines the BitString value type shared by every
// grayknuth package, together with the alphabet validator and a small
// mutable Buffer used while walking a flip trajectory.
//
// What:
//
//   - BitString is an immutable, comparable sequence of '0'/'1' symbols.
//     Two BitStrings are equal iff they hold the same bits, so they can be
//     compared with == and used as map keys.
//   - Parse / Validate reject anything outside the binary alphabet and name
//     the first offending character and its position.
//   - Buffer is a fixed-size scratch copy that flips single positions in
//     place at O(1) while keeping a running count of ones.
//
// Complexity:
//
//   - Parse, Validate, Ones, Complement, Concat: O(n).
//   - At, Len, Buffer.Flip, Buffer.Ones: O(1).
//
// Errors:
//
//   - ErrInvalidAlphabet: input contains a character other than '0' or '1'.
//     The concrete error is an *AlphabetError carrying Pos and Char.
package bitstring
