// Package primitives implements the bit-level building blocks DES is
// assembled from: straight, expansion and compression permutation boxes,
// substitution boxes, the swap and XOR transforms, and the Pipeline /
// HorizontalPipeline combinators that wire them together.
//
// Every component operates on Bits, a fixed-width big-endian bit string
// that may straddle byte boundaries (DES's round key schedule, for
// instance, carries 56- and 48-bit intermediate values). Components convert
// to and from byte buffers only at the package boundary.
package primitives

import "math/big"

// Bits is an immutable, fixed-width, big-endian bit string. Bit 0 is the
// most significant bit, matching the numbering used by the permutation
// tables in the DES specification.
type Bits struct {
	v     *big.Int
	width int
}

// BitsFromBytes builds a Bits value spanning len(b)*8 bits from a byte slice.
func BitsFromBytes(b []byte) Bits {
	return Bits{v: new(big.Int).SetBytes(b), width: len(b) * 8}
}

// BitsFromUint builds a Bits value of the given width from a uint64.
func BitsFromUint(x uint64, width int) Bits {
	return Bits{v: new(big.Int).SetUint64(x), width: width}
}

// Width reports the number of bits in b.
func (b Bits) Width() int { return b.width }

// Bytes renders b as a big-endian byte slice, padded on the left to a whole
// number of bytes. Callers must only do this when Width() is a multiple of 8.
func (b Bits) Bytes() []byte {
	out := make([]byte, (b.width+7)/8)
	b.v.FillBytes(out)
	return out
}

// Uint64 renders b as an unsigned integer. Width must be <= 64.
func (b Bits) Uint64() uint64 { return b.v.Uint64() }

// Bit returns the bit at position i (0 = most significant bit).
func (b Bits) Bit(i int) uint { return b.v.Bit(b.width - 1 - i) }

// bitsFromBig wraps an existing big.Int (already reduced to width bits).
func bitsFromBig(v *big.Int, width int) Bits {
	return Bits{v: v, width: width}
}

// split divides b at bit position half, returning the high and low parts.
func split(b Bits, half int) (hi, lo Bits) {
	rest := b.width - half
	mask := new(big.Int).Lsh(big.NewInt(1), uint(rest))
	mask.Sub(mask, big.NewInt(1))
	hiVal := new(big.Int).Rsh(b.v, uint(rest))
	loVal := new(big.Int).And(b.v, mask)
	return bitsFromBig(hiVal, half), bitsFromBig(loVal, rest)
}

// BinarySplit divides b into equal high and low halves by bit count.
func BinarySplit(b Bits) (left, right Bits) {
	return split(b, b.width/2)
}

// BinaryJoin concatenates a and b into a single value whose width is the
// sum of their widths.
func BinaryJoin(a, b Bits) Bits {
	v := new(big.Int).Lsh(a.v, uint(b.width))
	v.Or(v, b.v)
	return bitsFromBig(v, a.width+b.width)
}

// CircularShiftLeft rotates b left by positions within its own bit width.
func CircularShiftLeft(b Bits, positions int) Bits {
	n := b.width
	positions %= n
	if positions < 0 {
		positions += n
	}
	if positions == 0 {
		return b
	}
	mask := new(big.Int).Lsh(big.NewInt(1), uint(n))
	mask.Sub(mask, big.NewInt(1))

	shifted := new(big.Int).Lsh(b.v, uint(positions))
	shifted.And(shifted, mask)
	carried := new(big.Int).Rsh(b.v, uint(n-positions))
	shifted.Or(shifted, carried)
	return bitsFromBig(shifted, n)
}

// Xor returns a ^ b. Both operands must share the same width.
func Xor(a, b Bits) (Bits, error) {
	if a.width != b.width {
		return Bits{}, &SizeMismatchError{Component: "Xor", Want: a.width, Got: b.width}
	}
	return bitsFromBig(new(big.Int).Xor(a.v, b.v), a.width), nil
}

// nArySplit divides b into count equal-width chunks, most significant first.
func nArySplit(b Bits, chunkWidth, count int) []Bits {
	chunks := make([]Bits, count)
	mask := new(big.Int).Lsh(big.NewInt(1), uint(chunkWidth))
	mask.Sub(mask, big.NewInt(1))
	v := new(big.Int).Set(b.v)
	for i := count - 1; i >= 0; i-- {
		chunk := new(big.Int).And(v, mask)
		chunks[i] = bitsFromBig(chunk, chunkWidth)
		v.Rsh(v, uint(chunkWidth))
	}
	return chunks
}

// nAryJoin concatenates a sequence of equal-width chunks, most significant first.
func nAryJoin(chunks []Bits) Bits {
	total := 0
	for _, c := range chunks {
		total += c.width
	}
	v := new(big.Int)
	for _, c := range chunks {
		v.Lsh(v, uint(c.width))
		v.Or(v, c.v)
	}
	return bitsFromBig(v, total)
}
