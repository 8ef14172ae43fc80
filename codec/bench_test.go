package codec_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/grayknuth/bitstring"
	"github.com/katalvlaran/grayknuth/codec"
)

// randomBits returns a deterministic random payload of n bits.
func randomBits(n int, seed int64) bitstring.BitString {
	rng := rand.New(rand.NewSource(seed))
	raw := make([]byte, n)
	for i := range raw {
		raw[i] = byte(rng.Intn(2))
	}
	bs, _ := bitstring.FromBits(raw)

	return bs
}

// BenchmarkEncode measures encode cost across payload sizes.
// Complexity: O(n) per call.
func BenchmarkEncode(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		in := randomBits(n, 42)
		b.Run(fmt.Sprintf("random/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = codec.Encode(in)
			}
		})
	}
	// All-zero input balances only near step n/2: the longest walks.
	skew := bitstring.MustParse(strings.Repeat("0", 16384))
	b.Run("zeros/n=16384", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = codec.Encode(skew)
		}
	})
}

// BenchmarkDecode measures decode cost, including the length search.
func BenchmarkDecode(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		enc, err := codec.Encode(randomBits(n, 7))
		if err != nil {
			b.Fatalf("setup Encode failed: %v", err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = codec.Decode(enc)
			}
		})
	}
}
