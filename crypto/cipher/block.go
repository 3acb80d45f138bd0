package cipher

import (
	stdcipher "crypto/cipher"
)

// BlockMode names one of the supported modes of operation. The string
// value doubles as the lookup key in ModeConstructors.
type BlockMode string

const (
	ECB BlockMode = "ECB" // every block encrypted independently
	CBC BlockMode = "CBC" // each block chained to the previous ciphertext
	CFB BlockMode = "CFB" // keystream fed back from ciphertext
	OFB BlockMode = "OFB" // keystream fed back from cipher output
	CTR BlockMode = "CTR" // keystream from a big-endian counter
)

// checkIV verifies a feedback mode received an IV of exactly one block.
func checkIV(mode BlockMode, iv []byte, blockSize int) error {
	if len(iv) == 0 {
		return EmptyIVError{Mode: mode}
	}
	if len(iv) != blockSize {
		return IVLengthError{Mode: mode, Len: len(iv), BlockSize: blockSize}
	}
	return nil
}

// checkAligned verifies src holds a whole number of blocks.
func checkAligned(mode BlockMode, src []byte, blockSize int) error {
	if len(src)%blockSize != 0 {
		return AlignmentError{Mode: mode, Len: len(src), BlockSize: blockSize}
	}
	return nil
}

// applyECB walks src one block at a time through fn. The standard library
// deliberately ships no ECB construction, so the loop lives here; every
// other mode below delegates to crypto/cipher.
func applyECB(src []byte, blockSize int, fn func(dst, src []byte)) []byte {
	dst := make([]byte, len(src))
	for off := 0; off < len(src); off += blockSize {
		fn(dst[off:off+blockSize], src[off:off+blockSize])
	}
	return dst
}

func encryptECB(src []byte, block stdcipher.Block) ([]byte, error) {
	if err := checkAligned(ECB, src, block.BlockSize()); err != nil {
		return nil, err
	}
	return applyECB(src, block.BlockSize(), block.Encrypt), nil
}

func decryptECB(src []byte, block stdcipher.Block) ([]byte, error) {
	if err := checkAligned(ECB, src, block.BlockSize()); err != nil {
		return nil, err
	}
	return applyECB(src, block.BlockSize(), block.Decrypt), nil
}

func encryptCBC(src, iv []byte, block stdcipher.Block) ([]byte, error) {
	if err := checkIV(CBC, iv, block.BlockSize()); err != nil {
		return nil, err
	}
	if err := checkAligned(CBC, src, block.BlockSize()); err != nil {
		return nil, err
	}
	dst := make([]byte, len(src))
	stdcipher.NewCBCEncrypter(block, iv).CryptBlocks(dst, src)
	return dst, nil
}

func decryptCBC(src, iv []byte, block stdcipher.Block) ([]byte, error) {
	if err := checkIV(CBC, iv, block.BlockSize()); err != nil {
		return nil, err
	}
	if err := checkAligned(CBC, src, block.BlockSize()); err != nil {
		return nil, err
	}
	dst := make([]byte, len(src))
	stdcipher.NewCBCDecrypter(block, iv).CryptBlocks(dst, src)
	return dst, nil
}

// xorStream drives the three keystream modes. They differ only in which
// stdlib constructor turns the block cipher and IV into a keystream, and
// none of them constrains the input length, so a short final segment is
// encrypted as-is, without padding.
func xorStream(mode BlockMode, src, iv []byte, block stdcipher.Block, keystream func(stdcipher.Block, []byte) stdcipher.Stream) ([]byte, error) {
	if err := checkIV(mode, iv, block.BlockSize()); err != nil {
		return nil, err
	}
	dst := make([]byte, len(src))
	keystream(block, iv).XORKeyStream(dst, src)
	return dst, nil
}
