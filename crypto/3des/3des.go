// Package triple_des implements Triple DES by pipelining three DES
// instances.
//
// This deliberately reproduces a divergence from the textbook EDE
// (encrypt-decrypt-encrypt) construction: the cipher this was ported from
// builds the pipeline as Pipeline([DES(K1), DES(K2), DES(K1)]) with the
// pipeline's default NATURAL decrypt order, which composes to
// E_K1(E_K2(E_K1(x))) -- three encryptions, not E-D-E. That is kept as
// specified rather than "fixed" to the standard; see DESIGN.md.
package triple_des

import (
	"fmt"

	"github.com/gouguoyin/blockcipher/crypto/des"
	"github.com/gouguoyin/blockcipher/internal/primitives"
)

const (
	// BlockSize is the Triple DES block size in bytes (same as DES).
	BlockSize = des.BlockSize
	// KeySize is the combined size, in bytes, of the two DES keys K1 and K2.
	KeySize = 2 * des.KeySize
)

// KeySizeError reports a key of the wrong size being passed to NewCipher.
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("crypto/3des: invalid key size %d, want %d bytes", int(k), KeySize)
}

// blockComponent adapts a des.Cipher (the dst/src []byte convention shared
// with cipher.Block) to primitives.Component (pure Bits in, Bits out), so
// that the generic Pipeline combinator can drive DES instances exactly as
// it drives bit-level primitives.
type blockComponent struct {
	cipher *des.Cipher
}

func (b blockComponent) Encrypt(src primitives.Bits) (primitives.Bits, error) {
	dst := make([]byte, des.BlockSize)
	b.cipher.Encrypt(dst, src.Bytes())
	return primitives.BitsFromBytes(dst), nil
}

func (b blockComponent) Decrypt(src primitives.Bits) (primitives.Bits, error) {
	dst := make([]byte, des.BlockSize)
	b.cipher.Decrypt(dst, src.Bytes())
	return primitives.BitsFromBytes(dst), nil
}

// Cipher is a keyed Triple DES instance, built as a three-stage Pipeline
// over two DES instances: E_K1, E_K2, E_K1 (see the EEE note above).
type Cipher struct {
	pipeline *primitives.Pipeline
}

// NewCipher builds a Triple DES cipher from a 16-byte key (K1 || K2), each
// half an 8-byte DES key including parity. When validateKey is true, each
// DES key's parity bits are checked.
func NewCipher(key []byte, validateKey bool) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	des1a, err := des.NewCipher(key[:des.KeySize], validateKey)
	if err != nil {
		return nil, err
	}
	des2, err := des.NewCipher(key[des.KeySize:], validateKey)
	if err != nil {
		return nil, err
	}
	des1b, err := des.NewCipher(key[:des.KeySize], validateKey)
	if err != nil {
		return nil, err
	}

	pipeline := primitives.NewPipeline(
		primitives.NATURAL,
		blockComponent{des1a},
		blockComponent{des2},
		blockComponent{des1b},
	)
	return &Cipher{pipeline: pipeline}, nil
}

// Encrypt encrypts a single 64-bit block as E_K1(E_K2(E_K1(src))).
func (c *Cipher) Encrypt(dst, src []byte) {
	out, err := c.pipeline.Encrypt(primitives.BitsFromBytes(src))
	if err != nil {
		panic(err)
	}
	copy(dst, out.Bytes())
}

// Decrypt decrypts a single 64-bit block as D_K1(D_K2(D_K1(src))), the
// NATURAL-order reversal of the encrypt pipeline.
func (c *Cipher) Decrypt(dst, src []byte) {
	out, err := c.pipeline.Decrypt(primitives.BitsFromBytes(src))
	if err != nil {
		panic(err)
	}
	copy(dst, out.Bytes())
}

// BlockSize reports the cipher's block size in bytes, satisfying
// cipher.Block.
func (c *Cipher) BlockSize() int { return BlockSize }
