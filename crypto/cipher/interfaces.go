package cipher

import (
	stdcipher "crypto/cipher"
)

// Cipher is the mode engine's whole-message surface: a configured mode
// and padding strategy that encrypt or decrypt arbitrary-length input,
// delegating per-block work to any stdlib-compatible block cipher. The
// block cipher arrives per call rather than at construction, so one
// configured Cipher can serve any number of keys.
type Cipher interface {
	Encrypt(src []byte, block stdcipher.Block) ([]byte, error)
	Decrypt(src []byte, block stdcipher.Block) ([]byte, error)
	SetIV(iv []byte)
	SetPadding(padding PaddingMode)
}

var _ Cipher = (*modeCipher)(nil)
