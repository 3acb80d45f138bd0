// Package cipher composes block ciphers into encryptors for
// arbitrary-length messages: five modes of operation (ECB, CBC, CFB, OFB,
// CTR) over three padding strategies (none, zero, PKCS7). Per-block work
// is delegated to any crypto/cipher.Block, so the DES, PRESENT, SPECK and
// CLEFIA implementations in this module plug in exactly like a
// standard-library cipher.
package cipher

import stdcipher "crypto/cipher"

// modeCipher is the one concrete Cipher: a mode name, a padding strategy
// and an optional IV. It holds no key material; the keyed block cipher is
// a call argument.
type modeCipher struct {
	mode    BlockMode
	padding PaddingMode
	iv      []byte
}

// NewBlockCipher configures a Cipher for the given mode and padding.
// Every mode but ECB additionally needs SetIV before the first call.
func NewBlockCipher(mode BlockMode, padding PaddingMode) Cipher {
	return &modeCipher{mode: mode, padding: padding}
}

// ModeConstructors maps each supported mode name to a constructor, so
// driver code selecting a mode from configuration goes through one
// dictionary instead of switching on BlockMode itself.
var ModeConstructors = map[string]func(padding PaddingMode) Cipher{
	string(ECB): func(p PaddingMode) Cipher { return NewBlockCipher(ECB, p) },
	string(CBC): func(p PaddingMode) Cipher { return NewBlockCipher(CBC, p) },
	string(CFB): func(p PaddingMode) Cipher { return NewBlockCipher(CFB, p) },
	string(OFB): func(p PaddingMode) Cipher { return NewBlockCipher(OFB, p) },
	string(CTR): func(p PaddingMode) Cipher { return NewBlockCipher(CTR, p) },
}

// SetIV replaces the initialization vector.
func (c *modeCipher) SetIV(iv []byte) { c.iv = iv }

// SetPadding replaces the padding strategy.
func (c *modeCipher) SetPadding(padding PaddingMode) { c.padding = padding }

// Encrypt runs src through the configured mode under the given block
// cipher. The keystream modes take src as-is (their output length equals
// their input length); ECB and CBC pad first.
func (c *modeCipher) Encrypt(src []byte, block stdcipher.Block) ([]byte, error) {
	switch c.mode {
	case CFB:
		return xorStream(CFB, src, c.iv, block, stdcipher.NewCFBEncrypter)
	case OFB:
		return xorStream(OFB, src, c.iv, block, stdcipher.NewOFB)
	case CTR:
		return xorStream(CTR, src, c.iv, block, stdcipher.NewCTR)
	case ECB, CBC:
		padded, err := c.pad(src, block.BlockSize())
		if err != nil {
			return nil, err
		}
		if c.mode == CBC {
			return encryptCBC(padded, c.iv, block)
		}
		return encryptECB(padded, block)
	}
	return nil, UnsupportedBlockModeError{Mode: c.mode}
}

// Decrypt reverses Encrypt under the same mode, padding, IV and block
// cipher. OFB and CTR decrypt with the identical keystream transform; CFB
// swaps in the stdlib's decrypting feedback; ECB and CBC unpad after the
// block transform.
func (c *modeCipher) Decrypt(src []byte, block stdcipher.Block) ([]byte, error) {
	switch c.mode {
	case CFB:
		return xorStream(CFB, src, c.iv, block, stdcipher.NewCFBDecrypter)
	case OFB:
		return xorStream(OFB, src, c.iv, block, stdcipher.NewOFB)
	case CTR:
		return xorStream(CTR, src, c.iv, block, stdcipher.NewCTR)
	case ECB, CBC:
		var out []byte
		var err error
		if c.mode == CBC {
			out, err = decryptCBC(src, c.iv, block)
		} else {
			out, err = decryptECB(src, block)
		}
		if err != nil {
			return nil, err
		}
		if c.padding == PKCS7 && len(out) > 0 && int(out[len(out)-1]) > block.BlockSize() {
			return nil, PaddingError{Count: int(out[len(out)-1]), Len: len(out)}
		}
		return c.unpad(out)
	}
	return nil, UnsupportedBlockModeError{Mode: c.mode}
}

// pad applies the configured padding strategy ahead of a whole-block mode.
func (c *modeCipher) pad(src []byte, blockSize int) ([]byte, error) {
	switch c.padding {
	case No:
		return NewNoPadding(src), nil
	case Zero:
		return NewZeroPadding(src, blockSize), nil
	case PKCS7:
		return NewPKCS7Padding(src, blockSize), nil
	}
	return nil, UnsupportedPaddingModeError{Mode: c.padding}
}

// unpad reverses pad after a whole-block mode decrypts.
func (c *modeCipher) unpad(src []byte) ([]byte, error) {
	switch c.padding {
	case No:
		return NewNoUnPadding(src), nil
	case Zero:
		return NewZeroUnPadding(src), nil
	case PKCS7:
		return NewPKCS7UnPadding(src)
	}
	return nil, UnsupportedPaddingModeError{Mode: c.padding}
}
