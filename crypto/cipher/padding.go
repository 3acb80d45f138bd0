package cipher

import "bytes"

// PaddingMode names one of the supported padding strategies.
type PaddingMode string

// The three strategies the modes of operation compose with: None for the
// keystream modes, where every byte of the final segment is meaningful,
// and Zero and PKCS7 for the whole-block modes.
const (
	No    PaddingMode = "No"
	Zero  PaddingMode = "Zero"
	PKCS7 PaddingMode = "PKCS7"
)

// NewNoPadding passes src through untouched. The caller is responsible
// for input that is already a whole number of blocks.
func NewNoPadding(src []byte) []byte {
	return src
}

// NewNoUnPadding passes src through untouched.
func NewNoUnPadding(src []byte) []byte {
	return src
}

// NewZeroPadding extends src to the next block boundary with zero bytes.
// Input already on a boundary is returned as-is, except that empty input
// grows to one full zero block.
func NewZeroPadding(src []byte, blockSize int) []byte {
	short := blockSize - len(src)%blockSize
	if short == blockSize && len(src) > 0 {
		return src
	}
	return append(src, make([]byte, short)...)
}

// NewZeroUnPadding strips every trailing zero byte from src. A plaintext
// that itself ends in zero bytes loses them too; zero padding cannot tell
// the difference, which is why it suits character data only.
func NewZeroUnPadding(src []byte) []byte {
	end := len(src)
	for end > 0 && src[end-1] == 0 {
		end--
	}
	return src[:end]
}

// NewPKCS7Padding extends src to the next block boundary with n copies of
// the byte n. Input already on a boundary grows by one full block, so the
// count is always recoverable.
func NewPKCS7Padding(src []byte, blockSize int) []byte {
	n := blockSize - len(src)%blockSize
	return append(src, bytes.Repeat([]byte{byte(n)}, n)...)
}

// NewPKCS7UnPadding reads the padding count from the final byte of src
// and strips that many bytes, checking that each one carries the count
// value. A malformed suffix comes back as a PaddingError rather than
// silently truncating or passing the input through. The count is checked
// against len(src) only; Cipher.Decrypt additionally rejects a count
// larger than the block size before calling this.
func NewPKCS7UnPadding(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, PaddingError{Count: 0, Len: 0}
	}
	n := int(src[len(src)-1])
	if n == 0 || n > len(src) {
		return nil, PaddingError{Count: n, Len: len(src)}
	}
	for _, b := range src[len(src)-n:] {
		if b != byte(n) {
			return nil, PaddingError{Count: n, Len: len(src)}
		}
	}
	return src[:len(src)-n], nil
}
