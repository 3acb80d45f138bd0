// Package blockcipher is the top-level driver tying a named block-cipher
// primitive (DES, 3DES, PRESENT, SPECK, CLEFIA) to a named block mode
// (ECB, CBC, CFB, OFB, CTR) and a padding strategy, so callers can
// encrypt or decrypt without importing the primitive packages directly.
package blockcipher

import (
	stdcipher "crypto/cipher"
	"crypto/rand"
	"fmt"

	tripledes "github.com/gouguoyin/blockcipher/crypto/3des"
	blockmode "github.com/gouguoyin/blockcipher/crypto/cipher"
	"github.com/gouguoyin/blockcipher/crypto/clefia"
	"github.com/gouguoyin/blockcipher/crypto/des"
	"github.com/gouguoyin/blockcipher/crypto/present"
	"github.com/gouguoyin/blockcipher/crypto/speck"
	"golang.org/x/crypto/blowfish"
	"golang.org/x/crypto/twofish"
)

// Algorithm names one of the supported block-cipher primitives. The five
// named by the toolkit's core (DES through CLEFIA) are built from scratch
// in this module; Blowfish and Twofish are registered alongside them so
// the same Driver, mode engine, and padding strategies can drive a
// standard-library-grade cipher.Block without a second code path.
type Algorithm string

const (
	DES       Algorithm = "DES"
	TripleDES Algorithm = "3DES"
	PRESENT   Algorithm = "PRESENT"
	SPECK     Algorithm = "SPECK"
	CLEFIA    Algorithm = "CLEFIA"
	Blowfish  Algorithm = "Blowfish"
	Twofish   Algorithm = "Twofish"
)

// UnsupportedAlgorithmError reports an Algorithm with no registered
// cipher constructor.
type UnsupportedAlgorithmError struct {
	Name Algorithm
}

func (e UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("blockcipher: unsupported algorithm %q", e.Name)
}

// algorithmConstructors mirrors blockmode.ModeConstructors: one entry per
// supported primitive, each building the stdlib-compatible cipher.Block
// that the mode engine drives.
var algorithmConstructors = map[Algorithm]func(key []byte) (stdcipher.Block, error){
	DES: func(key []byte) (stdcipher.Block, error) {
		return des.NewCipher(key, false)
	},
	TripleDES: func(key []byte) (stdcipher.Block, error) {
		return tripledes.NewCipher(key, false)
	},
	PRESENT: func(key []byte) (stdcipher.Block, error) {
		return present.NewCipher(key)
	},
	SPECK: func(key []byte) (stdcipher.Block, error) {
		return speck.NewCipher(key)
	},
	CLEFIA: func(key []byte) (stdcipher.Block, error) {
		return clefia.NewCipher(key)
	},
	Blowfish: func(key []byte) (stdcipher.Block, error) {
		return blowfish.NewCipher(key)
	},
	Twofish: func(key []byte) (stdcipher.Block, error) {
		return twofish.NewCipher(key)
	},
}

func newBlock(alg Algorithm, key []byte) (stdcipher.Block, error) {
	ctor, ok := algorithmConstructors[alg]
	if !ok {
		return nil, UnsupportedAlgorithmError{Name: alg}
	}
	return ctor(key)
}

// Driver composes a named algorithm, a named mode, and a padding
// strategy into a single encrypt/decrypt pair. It is the L4 entry point:
// everything below it (primitive algebra, ciphers, modes, padding) is
// reachable independently, but most callers only need this.
type Driver struct {
	alg     Algorithm
	mode    blockmode.BlockMode
	padding blockmode.PaddingMode
	key     []byte
	iv      []byte
}

// New builds a Driver for the given algorithm and mode name. modeName
// must be one of "ECB", "CBC", "CFB", "OFB", "CTR" -- the same dictionary
// blockmode.ModeConstructors exposes.
func New(alg Algorithm, modeName string, padding blockmode.PaddingMode) (*Driver, error) {
	if _, ok := algorithmConstructors[alg]; !ok {
		return nil, UnsupportedAlgorithmError{Name: alg}
	}
	if _, ok := blockmode.ModeConstructors[modeName]; !ok {
		return nil, fmt.Errorf("blockcipher: unsupported mode %q", modeName)
	}
	return &Driver{alg: alg, mode: blockmode.BlockMode(modeName), padding: padding}, nil
}

// SetKey sets the cipher key.
func (d *Driver) SetKey(key []byte) { d.key = key }

// SetIV sets the initialization vector used by every mode but ECB.
func (d *Driver) SetIV(iv []byte) { d.iv = iv }

// IV returns the initialization vector in use, including one drawn at
// random by Encrypt when none was set. Callers that let Encrypt draw the
// IV need it to configure the decrypting side.
func (d *Driver) IV() []byte { return d.iv }

// Encrypt encrypts plaintext under the configured algorithm, mode, and
// padding strategy. If no IV has been set and the mode needs one, a fresh
// random block is drawn and kept on the driver for IV() to report.
func (d *Driver) Encrypt(plaintext []byte) ([]byte, error) {
	block, err := newBlock(d.alg, d.key)
	if err != nil {
		return nil, err
	}
	if len(d.iv) == 0 && d.mode != blockmode.ECB {
		iv := make([]byte, block.BlockSize())
		if _, err := rand.Read(iv); err != nil {
			return nil, err
		}
		d.iv = iv
	}
	c := blockmode.NewBlockCipher(d.mode, d.padding)
	c.SetIV(d.iv)
	return c.Encrypt(plaintext, block)
}

// Decrypt decrypts ciphertext produced by Encrypt with the same
// algorithm, mode, padding strategy, key, and IV.
func (d *Driver) Decrypt(ciphertext []byte) ([]byte, error) {
	block, err := newBlock(d.alg, d.key)
	if err != nil {
		return nil, err
	}
	c := blockmode.NewBlockCipher(d.mode, d.padding)
	c.SetIV(d.iv)
	return c.Decrypt(ciphertext, block)
}
