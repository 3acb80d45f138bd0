// Package speck implements SPECK-128/256: a 128-bit-block, 256-bit-key
// member of the SPECK family of ARX (add-rotate-xor) ciphers. The cipher
// operates on a pair of 64-bit words, so it is represented internally as
// two uint64 words rather than through the bit-primitive algebra used for
// DES -- SPECK's round function is pure 64-bit modular arithmetic, and
// uint64 is the idiomatic Go vehicle for that, mirroring the reference
// this was ported from, which holds the state as a pair of fixed-width
// integers and reduces modulo 2^64 after every add.
package speck

import "fmt"

const (
	// BlockSize is the SPECK-128 block size in bytes (two 64-bit words).
	BlockSize = 16
	// KeySize is the SPECK-128/256 key size in bytes (four 64-bit words).
	KeySize = 32

	wordBits = 64
	alpha    = 8
	beta     = 3
	rounds   = 34
)

// KeySizeError reports a key that is not exactly KeySize bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("crypto/speck: invalid key size %d, want %d bytes", int(k), KeySize)
}

// BlockSizeError reports a plaintext/ciphertext block that is not exactly
// BlockSize bytes.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return fmt.Sprintf("crypto/speck: invalid block size %d, want %d bytes", int(b), BlockSize)
}

func rotateRight(x uint64, n uint) uint64 {
	return (x >> n) | (x << (wordBits - n))
}

func rotateLeft(x uint64, n uint) uint64 {
	return (x << n) | (x >> (wordBits - n))
}

// encryptRound applies one SPECK round: x,y are the two state words, k the
// round key. Matches the reference's rs_x/new_x/ls_y/new_y construction,
// with Go's uint64 wraparound standing in for the explicit mod_mask
// reduction the Python source needed for its arbitrary-precision ints.
func encryptRound(x, y, k uint64) (uint64, uint64) {
	rsX := rotateRight(x, alpha)
	newX := k ^ (rsX + y)
	lsY := rotateLeft(y, beta)
	newY := newX ^ lsY
	return newX, newY
}

// decryptRound inverts encryptRound.
func decryptRound(x, y, k uint64) (uint64, uint64) {
	xorXY := x ^ y
	newY := rotateRight(xorXY, beta)
	xorXK := x ^ k
	msub := xorXK - newY
	newX := rotateLeft(msub, alpha)
	return newX, newY
}

// Cipher is a keyed SPECK-128/256 instance. Its round-key schedule is
// computed once at construction.
type Cipher struct {
	roundKeys [rounds]uint64
}

// NewCipher builds a SPECK-128/256 cipher from a 32-byte key.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	// The key is treated as one big 256-bit big-endian integer: the
	// schedule seeds from its least-significant word upward, so word[3]
	// (the last 8 key bytes) seeds key_schedule[0] and words[2..0] seed
	// l_schedule[0..2] in that order.
	words := make([]uint64, 4)
	for i := 0; i < 4; i++ {
		words[i] = beUint64(key[i*8 : i*8+8])
	}

	keySchedule := make([]uint64, rounds)
	lSchedule := make([]uint64, rounds+2)
	keySchedule[0] = words[3]
	lSchedule[0] = words[2]
	lSchedule[1] = words[1]
	lSchedule[2] = words[0]

	for i := 0; i < rounds-1; i++ {
		lSchedule[i+3], keySchedule[i+1] = encryptRound(lSchedule[i], keySchedule[i], uint64(i))
	}

	var c Cipher
	copy(c.roundKeys[:], keySchedule)
	return &c, nil
}

func beUint64(b []byte) uint64 {
	var v uint64
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

func beBytes(v uint64, n int) []byte {
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}

// Encrypt encrypts a single 128-bit block.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) != BlockSize {
		panic(BlockSizeError(len(src)))
	}
	x := beUint64(src[:8])
	y := beUint64(src[8:])

	for round := 0; round < rounds; round++ {
		x, y = encryptRound(x, y, c.roundKeys[round])
	}

	copy(dst[:8], beBytes(x, 8))
	copy(dst[8:], beBytes(y, 8))
}

// Decrypt decrypts a single 128-bit block.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) != BlockSize {
		panic(BlockSizeError(len(src)))
	}
	x := beUint64(src[:8])
	y := beUint64(src[8:])

	for round := rounds - 1; round >= 0; round-- {
		x, y = decryptRound(x, y, c.roundKeys[round])
	}

	copy(dst[:8], beBytes(x, 8))
	copy(dst[8:], beBytes(y, 8))
}

// BlockSize reports the cipher's block size in bytes, satisfying
// cipher.Block.
func (c *Cipher) BlockSize() int { return BlockSize }
