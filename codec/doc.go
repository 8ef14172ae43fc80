// Package codec implements the grayknuth balanced-weight binary codec.
//
// 🚀 What does it do?
//
//	Encode turns any binary string of n bits into a string of
//	n + ceil(log2(2n+1)) + 1 bits whose counts of ones and zeros differ by
//	at most one. Decode recovers the original from the encoding alone: the
//	payload length is implied by the encoded length.
//
//	Useful wherever a channel penalizes skewed symbol frequency: DC balance
//	in line codes, wear leveling, watermark-resistant encodings.
//
// ⚙️ How it works:
//
//	The encoder walks a deterministic flip trajectory of 2n+1 states:
//
//	  step 0        the input itself
//	  step i ≤ n    the first i bits complemented
//	  step n        the full complement
//	  step n+j      the first j bits restored, the rest still complemented
//	  step 2n       the input again
//
//	Each state is suffixed with the reflected Gray codeword of its step
//	index. Moving one step flips one payload bit and one codeword bit, so
//	ones−zeros of the candidate moves by −2, 0 or +2. Step n mirrors the
//	payload weight of step 0, so the walk must pass within 2 of zero, and a
//	single trailing balance bit closes the gap:
//
//	  ones−zeros ∈ [0, 2]  → append 0
//	  zeros−ones ∈ [1, 2]  → append 1
//
//	The first qualifying step wins. Counting is incremental, so an encode
//	costs O(n) time and one O(n) scratch buffer.
//
//	Encoded layout:
//
//	  | flipped payload (n) | Gray index (ceil(log2(2n+1))) | balance (1) |
//
// ✨ Usage:
//
//	enc, err := codec.EncodeString("0000000")   // "111100001100"
//	dec, err := codec.DecodeString(enc)         // "0000000"
//
//	c := codec.New(codec.WithLogger(logger), codec.WithRecorder(rec))
//	frame, err := c.Inspect(encoded)            // prefix, index, step, ...
//
// Concurrency:
//
//	Every operation is a pure function of its input. A *Codec carries only
//	a logger and a metrics recorder, both safe for concurrent use, so one
//	Codec may serve any number of goroutines.
//
// Errors:
//
//   - ErrInvalidAlphabet: input contains a character other than '0'/'1'.
//   - ErrMalformedInput: the encoded length matches no payload length, the
//     Gray index field has the wrong width, or the recovered step exceeds 2n.
//   - ErrEncodingInvariantViolated: no balancing step was found. Unreachable
//     for any input; reported rather than panicking.
package codec
