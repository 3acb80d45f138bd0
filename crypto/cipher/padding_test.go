package cipher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exactBlocks returns n blocks worth of distinct, non-zero filler bytes, so
// that Zero-padding round-trips don't accidentally pass because the filler
// already ends in zeros.
func exactBlocks(blockSize, n int) []byte {
	out := make([]byte, blockSize*n)
	for i := range out {
		out[i] = byte(i%255) + 1
	}
	return out
}

func TestNoPadding(t *testing.T) {
	t.Run("pad is the identity", func(t *testing.T) {
		data := []byte("exactly16bytes!!")
		assert.Equal(t, data, NewNoPadding(data))
	})

	t.Run("unpad is the identity", func(t *testing.T) {
		data := []byte("exactly16bytes!!")
		assert.Equal(t, data, NewNoUnPadding(data))
	})

	t.Run("round trips data that is already block-aligned", func(t *testing.T) {
		data := exactBlocks(16, 3)
		padded := NewNoPadding(data)
		assert.Equal(t, data, NewNoUnPadding(padded))
	})
}

func TestZeroPadding(t *testing.T) {
	t.Run("pads a short final block with zero bytes", func(t *testing.T) {
		data := []byte("hello")
		padded := NewZeroPadding(data, 16)
		assert.Len(t, padded, 16)
		assert.Equal(t, data, padded[:len(data)])
		assert.Equal(t, make([]byte, 16-len(data)), padded[len(data):])
	})

	t.Run("leaves block-aligned non-empty data untouched", func(t *testing.T) {
		data := exactBlocks(8, 2)
		assert.Equal(t, data, NewZeroPadding(data, 8))
	})

	t.Run("pads empty data to a full block", func(t *testing.T) {
		padded := NewZeroPadding(nil, 8)
		assert.Equal(t, make([]byte, 8), padded)
	})

	t.Run("unpad strips trailing zero bytes", func(t *testing.T) {
		padded := append([]byte("hello"), make([]byte, 11)...)
		assert.Equal(t, []byte("hello"), NewZeroUnPadding(padded))
	})

	t.Run("unpad of all-zero input yields empty data", func(t *testing.T) {
		assert.Equal(t, []byte{}, NewZeroUnPadding(make([]byte, 16)))
	})

	t.Run("round trips through pad then unpad", func(t *testing.T) {
		data := []byte("triple-des block")
		padded := NewZeroPadding(data, 8)
		assert.Equal(t, data, NewZeroUnPadding(padded))
	})

	t.Run("is ambiguous for plaintext ending in zero bytes", func(t *testing.T) {
		// Zero padding cannot distinguish a legitimate trailing zero byte
		// in the plaintext from padding, so unpad over-strips. Known
		// limitation; character data only.
		data := []byte{'a', 'b', 'c', 0x00}
		padded := NewZeroPadding(data, 8)
		assert.NotEqual(t, data, NewZeroUnPadding(padded))
		assert.Equal(t, []byte{'a', 'b', 'c'}, NewZeroUnPadding(padded))
	})
}

func TestPKCS7Padding(t *testing.T) {
	t.Run("pads a short final block with the padding-length byte", func(t *testing.T) {
		data := []byte("hello") // 5 bytes, block size 8 -> 3 bytes of 0x03
		padded := NewPKCS7Padding(data, 8)
		assert.Equal(t, append([]byte("hello"), 3, 3, 3), padded)
	})

	t.Run("appends a full block when already block-aligned", func(t *testing.T) {
		data := exactBlocks(8, 2)
		padded := NewPKCS7Padding(data, 8)
		assert.Len(t, padded, len(data)+8)
		assert.Equal(t, bytes.Repeat([]byte{8}, 8), padded[len(data):])
	})

	t.Run("round trips through pad then unpad", func(t *testing.T) {
		for _, data := range [][]byte{
			nil,
			[]byte("a"),
			exactBlocks(16, 1),
			exactBlocks(16, 3),
			append(exactBlocks(16, 2), 0, 1, 2),
		} {
			padded := NewPKCS7Padding(data, 16)
			unpadded, err := NewPKCS7UnPadding(padded)
			require.NoError(t, err, "data=%v", data)
			assert.Equal(t, data, unpadded, "data=%v", data)
		}
	})

	t.Run("unpad rejects a zero-valued final byte", func(t *testing.T) {
		// paddingSize == 0 is not a valid PKCS7 count.
		data := append(exactBlocks(16, 1), 0)
		_, err := NewPKCS7UnPadding(data)
		var padErr PaddingError
		require.ErrorAs(t, err, &padErr)
	})

	t.Run("unpad rejects a count exceeding the input length", func(t *testing.T) {
		_, err := NewPKCS7UnPadding([]byte{1, 2, 3, 200})
		require.Error(t, err)
	})

	t.Run("unpad rejects padding bytes that disagree with the count", func(t *testing.T) {
		data := append(exactBlocks(8, 1), 1, 3, 3)
		_, err := NewPKCS7UnPadding(data)
		require.Error(t, err)
	})

	t.Run("unpad rejects empty input", func(t *testing.T) {
		_, err := NewPKCS7UnPadding(nil)
		require.Error(t, err)
	})
}
