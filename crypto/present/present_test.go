package present

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestPresent80TestVector(t *testing.T) {
	key := fromHex(t, "00000000000000000000")
	plain := fromHex(t, "0000000000000000")
	wantCipher := fromHex(t, "5579c1387b228445")

	c, err := NewCipher(key)
	require.NoError(t, err)

	got := make([]byte, BlockSize)
	c.Encrypt(got, plain)
	assert.Equal(t, wantCipher, got)

	back := make([]byte, BlockSize)
	c.Decrypt(back, got)
	assert.Equal(t, plain, back)
}

func TestPresent128TestVector(t *testing.T) {
	key := fromHex(t, "0123456789abcdef0123456789abcdef")
	plain := fromHex(t, "0123456789abcdef")
	wantCipher := fromHex(t, "0e9d28685e671dd6")

	c, err := NewCipher(key)
	require.NoError(t, err)

	got := make([]byte, BlockSize)
	c.Encrypt(got, plain)
	assert.Equal(t, wantCipher, got)

	back := make([]byte, BlockSize)
	c.Decrypt(back, got)
	assert.Equal(t, plain, back)
}

func TestNewCipherKeySizeError(t *testing.T) {
	_, err := NewCipher(make([]byte, 7))
	require.Error(t, err)
	var sizeErr KeySizeError
	assert.ErrorAs(t, err, &sizeErr)
}

func TestEncryptBlockSizeError(t *testing.T) {
	c, err := NewCipher(make([]byte, 10))
	require.NoError(t, err)

	assert.Panics(t, func() {
		c.Encrypt(make([]byte, BlockSize), []byte("short"))
	})
}
