package cipher

import (
	"bytes"
	"crypto/aes"
	stdcipher "crypto/cipher"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aesBlock(t *testing.T) stdcipher.Block {
	t.Helper()
	block, err := aes.NewCipher(bytes.Repeat([]byte{0x42}, 16))
	require.NoError(t, err)
	return block
}

// patterned returns n bytes of non-repeating filler so that block-level
// transforms can't pass by accident on all-zero input.
func patterned(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i*7 + 3)
	}
	return out
}

func TestECBTransform(t *testing.T) {
	block := aesBlock(t)

	t.Run("round trips whole blocks", func(t *testing.T) {
		src := patterned(48)
		ct, err := encryptECB(src, block)
		require.NoError(t, err)
		assert.NotEqual(t, src, ct)

		pt, err := decryptECB(ct, block)
		require.NoError(t, err)
		assert.Equal(t, src, pt)
	})

	t.Run("equal plaintext blocks give equal ciphertext blocks", func(t *testing.T) {
		one := patterned(16)
		src := append(append([]byte{}, one...), one...)
		ct, err := encryptECB(src, block)
		require.NoError(t, err)
		assert.Equal(t, ct[:16], ct[16:])
	})

	t.Run("rejects ragged input", func(t *testing.T) {
		for _, n := range []int{1, 15, 17, 47} {
			_, err := encryptECB(patterned(n), block)
			var alignErr AlignmentError
			require.ErrorAs(t, err, &alignErr, "len=%d", n)
			assert.Equal(t, n, alignErr.Len)

			_, err = decryptECB(patterned(n), block)
			require.ErrorAs(t, err, &alignErr, "len=%d", n)
		}
	})

	t.Run("accepts empty input", func(t *testing.T) {
		ct, err := encryptECB(nil, block)
		require.NoError(t, err)
		assert.Empty(t, ct)
	})
}

func TestCBCTransform(t *testing.T) {
	block := aesBlock(t)
	iv := patterned(16)

	t.Run("round trips whole blocks", func(t *testing.T) {
		src := patterned(64)
		ct, err := encryptCBC(src, iv, block)
		require.NoError(t, err)
		assert.NotEqual(t, src, ct)

		pt, err := decryptCBC(ct, iv, block)
		require.NoError(t, err)
		assert.Equal(t, src, pt)
	})

	t.Run("chaining makes equal blocks differ", func(t *testing.T) {
		one := patterned(16)
		src := append(append([]byte{}, one...), one...)
		ct, err := encryptCBC(src, iv, block)
		require.NoError(t, err)
		assert.NotEqual(t, ct[:16], ct[16:])
	})

	t.Run("a different iv changes the ciphertext", func(t *testing.T) {
		src := patterned(32)
		ct1, err := encryptCBC(src, iv, block)
		require.NoError(t, err)
		iv2 := patterned(17)[1:]
		ct2, err := encryptCBC(src, iv2, block)
		require.NoError(t, err)
		assert.NotEqual(t, ct1, ct2)
	})

	t.Run("requires an iv", func(t *testing.T) {
		_, err := encryptCBC(patterned(16), nil, block)
		var emptyErr EmptyIVError
		require.ErrorAs(t, err, &emptyErr)
		assert.Equal(t, CBC, emptyErr.Mode)

		_, err = decryptCBC(patterned(16), []byte{}, block)
		require.ErrorAs(t, err, &emptyErr)
	})

	t.Run("requires a one-block iv", func(t *testing.T) {
		for _, n := range []int{8, 15, 17, 32} {
			_, err := encryptCBC(patterned(16), patterned(n), block)
			var lenErr IVLengthError
			require.ErrorAs(t, err, &lenErr, "iv len=%d", n)
			assert.Equal(t, n, lenErr.Len)
			assert.Equal(t, 16, lenErr.BlockSize)
		}
	})

	t.Run("rejects ragged input", func(t *testing.T) {
		_, err := encryptCBC(patterned(20), iv, block)
		var alignErr AlignmentError
		require.ErrorAs(t, err, &alignErr)
		assert.Equal(t, CBC, alignErr.Mode)

		_, err = decryptCBC(patterned(20), iv, block)
		require.ErrorAs(t, err, &alignErr)
	})
}

func TestKeystreamModes(t *testing.T) {
	block := aesBlock(t)
	iv := patterned(16)

	modes := []struct {
		mode     BlockMode
		forward  func(stdcipher.Block, []byte) stdcipher.Stream
		backward func(stdcipher.Block, []byte) stdcipher.Stream
	}{
		{CFB, stdcipher.NewCFBEncrypter, stdcipher.NewCFBDecrypter},
		{OFB, stdcipher.NewOFB, stdcipher.NewOFB},
		{CTR, stdcipher.NewCTR, stdcipher.NewCTR},
	}

	for _, m := range modes {
		t.Run(string(m.mode), func(t *testing.T) {
			t.Run("round trips any length", func(t *testing.T) {
				for _, n := range []int{0, 1, 15, 16, 17, 100} {
					src := patterned(n)
					ct, err := xorStream(m.mode, src, iv, block, m.forward)
					require.NoError(t, err, "len=%d", n)
					assert.Len(t, ct, n)

					pt, err := xorStream(m.mode, ct, iv, block, m.backward)
					require.NoError(t, err)
					assert.Equal(t, src, pt, "len=%d", n)
				}
			})

			t.Run("requires an iv", func(t *testing.T) {
				_, err := xorStream(m.mode, patterned(16), nil, block, m.forward)
				var emptyErr EmptyIVError
				require.ErrorAs(t, err, &emptyErr)
				assert.Equal(t, m.mode, emptyErr.Mode)
			})

			t.Run("requires a one-block iv", func(t *testing.T) {
				_, err := xorStream(m.mode, patterned(16), patterned(12), block, m.forward)
				var lenErr IVLengthError
				require.ErrorAs(t, err, &lenErr)
				assert.Equal(t, 12, lenErr.Len)
			})
		})
	}
}

// OFB and CTR are their own inverses: applying the forward transform
// twice under the same iv recovers the plaintext.
func TestKeystreamSymmetry(t *testing.T) {
	block := aesBlock(t)
	iv := patterned(16)
	src := patterned(37)

	for _, m := range []struct {
		mode      BlockMode
		keystream func(stdcipher.Block, []byte) stdcipher.Stream
	}{
		{OFB, stdcipher.NewOFB},
		{CTR, stdcipher.NewCTR},
	} {
		ct, err := xorStream(m.mode, src, iv, block, m.keystream)
		require.NoError(t, err)
		pt, err := xorStream(m.mode, ct, iv, block, m.keystream)
		require.NoError(t, err)
		assert.Equal(t, src, pt, string(m.mode))
	}
}
