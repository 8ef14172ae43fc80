// Package grayknuth is a balanced-weight binary codec: it maps any n-bit
// string to an (n+L+1)-bit string whose ones and zeros differ by at most
// one, and maps it back.
//
// 🚀 What is grayknuth?
//
//	A toolkit built around Knuth's balancing idea,
//	with the balancing step recorded as a reflected Gray codeword:
//		• bitstring/ - validated '0'/'1' strings and an incremental flip buffer
//		• gray/      - binary-reflected Gray code sequences and index decoding
//		• length/    - encoded/decoded length arithmetic (L = ceil(log2(2n+1)))
//		• codec/     - Encode, Decode, Inspect and the Frame layout
//		• fileio/    - bit strings in files and streams (afero-backed)
//		• metrics/   - Prometheus counters and histograms for codec calls
//		• config/    - koanf configuration (YAML file + GRAYKNUTH_ env vars)
//		• logging/   - zap logger construction
//		• cmd/grayknuth - the CLI
//
// ✨ Why balanced codes?
//
//   - DC-free serial links and optical channels need equal mark/space counts
//   - Weight-balanced frames let a receiver detect unidirectional errors
//   - Encoding is O(n): each trajectory step flips one data bit and one
//     index bit, so the weight is tracked incrementally
//
// Encoded layout:
//
//	┌───────────── n ─────────────┬──── L ────┬─┐
//	│ data after flip step i      │ gray(i)   │b│
//	└─────────────────────────────┴───────────┴─┘
//
// Quick start:
//
//	enc, _ := codec.EncodeString("0000000") // "111100001100"
//	dec, _ := codec.DecodeString(enc)       // "0000000"
//
//	go install github.com/katalvlaran/grayknuth/cmd/grayknuth@latest
package grayknuth
