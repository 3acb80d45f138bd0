// Package des implements the DES block cipher from the primitive
// components it is classically built from: an initial/final straight
// permutation, a per-round expansion P-box, eight S-boxes driven in
// parallel through a HorizontalPipeline, a per-round straight P-box, and
// the PC-1/PC-2 compression P-boxes that drive the key schedule. The
// permutation tables live in tables.go and are part of the wire contract:
// they must match the published DES specification bit-for-bit.
package des

import (
	"github.com/gouguoyin/blockcipher/internal/primitives"
)

const (
	// BlockSize is the DES block size in bytes.
	BlockSize = 8
	// KeySize is the DES key size in bytes, including one parity bit per byte.
	KeySize = 8
	// RoundCount is the number of Feistel rounds DES runs.
	RoundCount = 16
)

var (
	initialPermutation = primitives.NewStraightPBox(initialPermutationTable, 1)
	expansionBox       = primitives.NewExpansionPBox(expansionTable, 1)
	straightBox        = primitives.NewStraightPBox(straightTable, 1)
	pc1Box             = primitives.NewCompressionPBox(pc1Table, 1, 64)
	pc2Box             = primitives.NewCompressionPBox(pc2Table, 1, 56)
	sBoxes             = buildSBoxes()
)

func buildSBoxes() *primitives.HorizontalPipeline {
	comps := make([]primitives.Component, len(sBoxTables))
	for i, table := range sBoxTables {
		rows := make([][]int, len(table))
		for r := range table {
			rows[r] = append([]int(nil), table[r][:]...)
		}
		comps[i] = primitives.NewSBox(rows, primitives.DESCellIndex, 4)
	}
	return primitives.NewHorizontalPipeline(comps, 48, 32)
}

// Cipher is a keyed DES instance. Its round-key schedule is computed once
// at construction and never mutates.
type Cipher struct {
	roundKeys [RoundCount]primitives.Bits
}

// NewCipher builds a DES cipher from an 8-byte key. When validateKey is
// true, each key byte's parity bit (its low bit) is checked against the XOR
// of the preceding 7 bits, failing with KeyParityError on mismatch.
func NewCipher(key []byte, validateKey bool) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	if validateKey {
		for i, b := range key {
			parity := byte(0)
			x := b
			for j := 0; j < 8; j++ {
				parity ^= x & 1
				x >>= 1
			}
			if parity != 0 {
				return nil, &KeyParityError{ByteIndex: i}
			}
		}
	}

	roundKeys, err := generateRoundKeys(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{roundKeys: roundKeys}, nil
}

// generateRoundKeys runs the DES key schedule: PC-1 selects 56 of the 64
// key bits, the two 28-bit halves rotate left by keyShiftSchedule[i] each
// round, and PC-2 compresses the rotated halves to a 48-bit round key.
func generateRoundKeys(key []byte) ([RoundCount]primitives.Bits, error) {
	var keys [RoundCount]primitives.Bits

	reduced, err := pc1Box.Encrypt(primitives.BitsFromBytes(key))
	if err != nil {
		return keys, err
	}
	left, right := primitives.BinarySplit(reduced)

	for round, shift := range keyShiftSchedule {
		left = primitives.CircularShiftLeft(left, shift)
		right = primitives.CircularShiftLeft(right, shift)

		combined := primitives.BinaryJoin(left, right)
		roundKey, err := pc2Box.Encrypt(combined)
		if err != nil {
			return keys, err
		}
		keys[round] = roundKey
	}
	return keys, nil
}

// feistelRound builds the per-round function F(R, K) ^ L as a Pipeline in
// ORIGINAL order: none of expansion, XOR, substitution, or the straight
// P-box individually inverts the Feistel half, so decryption replays the
// same sequence of forward operations with a different round key rather
// than reversing the pipeline.
func feistelRound(right, left, roundKey primitives.Bits) (primitives.Bits, error) {
	pipeline := primitives.NewPipeline(
		primitives.ORIGINAL,
		expansionBox,
		primitives.NewXorKey(roundKey),
		sBoxes,
		straightBox,
		primitives.NewXorKey(left),
	)
	return pipeline.Encrypt(right)
}

func (c *Cipher) process(block []byte, keys [RoundCount]primitives.Bits) ([]byte, error) {
	if len(block) != BlockSize {
		return nil, BlockSizeError(len(block))
	}

	permuted, err := initialPermutation.Encrypt(primitives.BitsFromBytes(block))
	if err != nil {
		return nil, err
	}
	left, right := primitives.BinarySplit(permuted)

	for round := 0; round < RoundCount; round++ {
		oldRight := right
		right, err = feistelRound(right, left, keys[round])
		if err != nil {
			return nil, err
		}
		left = oldRight
	}

	joined := primitives.BinaryJoin(right, left)
	final, err := initialPermutation.Decrypt(joined)
	if err != nil {
		return nil, err
	}
	return final.Bytes(), nil
}

// Encrypt encrypts a single 64-bit block.
func (c *Cipher) Encrypt(dst, src []byte) {
	out, err := c.process(src, c.roundKeys)
	if err != nil {
		panic(err)
	}
	copy(dst, out)
}

// Decrypt decrypts a single 64-bit block, replaying the same Feistel
// structure with the round-key schedule reversed.
func (c *Cipher) Decrypt(dst, src []byte) {
	var reversed [RoundCount]primitives.Bits
	for i := range c.roundKeys {
		reversed[i] = c.roundKeys[RoundCount-1-i]
	}
	out, err := c.process(src, reversed)
	if err != nil {
		panic(err)
	}
	copy(dst, out)
}

// BlockSize reports the cipher's block size in bytes, satisfying
// cipher.Block.
func (c *Cipher) BlockSize() int { return BlockSize }
