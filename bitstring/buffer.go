package bitstring

// Buffer is a fixed-size mutable copy of a BitString.
// It is not safe for concurrent use; each owner keeps its own.
type Buffer struct {
	buf  []byte
	ones int
}

// NewBuffer copies b into a new Buffer.
// Complexity: O(n).
func NewBuffer(b BitString) *Buffer {
	return &Buffer{
		buf:  []byte(b.s),
		ones: b.Ones(),
	}
}

// Len returns the number of bits.
func (bf *Buffer) Len() int { return len(bf.buf) }

// Ones returns the running count of 1 bits.
func (bf *Buffer) Ones() int { return bf.ones }

// At returns the bit at position i as 0 or 1.
func (bf *Buffer) At(i int) byte { return bf.buf[i] - zero }

// Flip inverts the bit at position i in place and returns its new value.
// Complexity: O(1).
func (bf *Buffer) Flip(i int) byte {
	bf.buf[i] ^= 1
	if bf.buf[i] == one {
		bf.ones++

		return 1
	}
	bf.ones--

	return 0
}

// Snapshot returns the current contents as an immutable BitString.
// Complexity: O(n).
func (bf *Buffer) Snapshot() BitString {
	return BitString{s: string(bf.buf)}
}
