package des

import "fmt"

// KeySizeError reports a key of the wrong size being passed to NewCipher.
// DES keys are 64 bits including parity, i.e. 8 bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("crypto/des: invalid key size %d, want 8 bytes", int(k))
}

// KeyParityError reports that a key byte failed the parity check requested
// via validateKey: the XOR of the byte's eight bits was not zero.
type KeyParityError struct {
	ByteIndex int
}

func (e *KeyParityError) Error() string {
	return fmt.Sprintf("crypto/des: parity mismatch in key byte %d", e.ByteIndex)
}

// BlockSizeError reports a plaintext/ciphertext block of the wrong size
// being passed to Encrypt/Decrypt. DES operates on 64-bit (8-byte) blocks.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return fmt.Sprintf("crypto/des: invalid block size %d, want 8 bytes", int(b))
}
