package clefia

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHex(t *testing.T, s string) []byte {
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestFixedVector128(t *testing.T) {
	key := mustHex(t, "ffeeddccbbaa99887766554433221100")
	plain := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	want := mustHex(t, "de2bf2fd9b74aacdf1298555459494fd")

	c, err := NewCipher(key)
	require.NoError(t, err)

	ct := make([]byte, BlockSize)
	c.Encrypt(ct, plain)
	assert.Equal(t, want, ct)

	pt := make([]byte, BlockSize)
	c.Decrypt(pt, ct)
	assert.Equal(t, plain, pt)
}

func TestFixedVector192(t *testing.T) {
	key := mustHex(t, "ffeeddccbbaa99887766554433221100f0e0d0c0b0a09080")
	plain := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	want := mustHex(t, "e2482f649f028dc480dda184fde181ad")

	c, err := NewCipher(key)
	require.NoError(t, err)

	ct := make([]byte, BlockSize)
	c.Encrypt(ct, plain)
	assert.Equal(t, want, ct)

	pt := make([]byte, BlockSize)
	c.Decrypt(pt, ct)
	assert.Equal(t, plain, pt)
}

func TestFixedVector256(t *testing.T) {
	key := mustHex(t, "ffeeddccbbaa99887766554433221100f0e0d0c0b0a090807060504030201000")
	plain := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	want := mustHex(t, "a1397814289de80c10da46d1fa48b38a")

	c, err := NewCipher(key)
	require.NoError(t, err)

	ct := make([]byte, BlockSize)
	c.Encrypt(ct, plain)
	assert.Equal(t, want, ct)

	pt := make([]byte, BlockSize)
	c.Decrypt(pt, ct)
	assert.Equal(t, plain, pt)
}

func TestCipherRoundTrip128(t *testing.T) {
	key := []byte("0123456789ABCDEF")
	c, err := NewCipher(key)
	require.NoError(t, err)

	plain := []byte("sixteen byte msg")
	ct := make([]byte, BlockSize)
	c.Encrypt(ct, plain)
	assert.NotEqual(t, plain, ct)

	pt := make([]byte, BlockSize)
	c.Decrypt(pt, ct)
	assert.Equal(t, plain, pt)
}

func TestCipherRoundTrip192(t *testing.T) {
	key := []byte("0123456789ABCDEF01234567")
	c, err := NewCipher(key)
	require.NoError(t, err)

	plain := []byte("sixteen byte msg")
	ct := make([]byte, BlockSize)
	c.Encrypt(ct, plain)
	assert.NotEqual(t, plain, ct)

	pt := make([]byte, BlockSize)
	c.Decrypt(pt, ct)
	assert.Equal(t, plain, pt)
}

func TestCipherRoundTrip256(t *testing.T) {
	key := []byte("0123456789ABCDEF0123456789ABCDEF")
	c, err := NewCipher(key)
	require.NoError(t, err)

	plain := []byte("sixteen byte msg")
	ct := make([]byte, BlockSize)
	c.Encrypt(ct, plain)
	assert.NotEqual(t, plain, ct)

	pt := make([]byte, BlockSize)
	c.Decrypt(pt, ct)
	assert.Equal(t, plain, pt)
}

func TestCipherDeterministicSchedule(t *testing.T) {
	key := []byte("0123456789ABCDEF")
	c1, err := NewCipher(key)
	require.NoError(t, err)
	c2, err := NewCipher(key)
	require.NoError(t, err)

	assert.Equal(t, c1.roundKeys, c2.roundKeys)
	assert.Equal(t, c1.wk, c2.wk)
}

func TestNewCipherKeySizeError(t *testing.T) {
	_, err := NewCipher(make([]byte, 20))
	require.Error(t, err)
	var sizeErr KeySizeError
	assert.ErrorAs(t, err, &sizeErr)
}

func TestEncryptBlockSizeError(t *testing.T) {
	c, err := NewCipher(make([]byte, 16))
	require.NoError(t, err)

	assert.Panics(t, func() {
		c.Encrypt(make([]byte, BlockSize), []byte("short"))
	})
}

func TestAllZeroKeyAndPlaintextRoundTrip(t *testing.T) {
	for _, keySize := range []int{16, 24, 32} {
		c, err := NewCipher(make([]byte, keySize))
		require.NoError(t, err)

		ct := make([]byte, BlockSize)
		c.Encrypt(ct, make([]byte, BlockSize))

		pt := make([]byte, BlockSize)
		c.Decrypt(pt, ct)
		assert.Equal(t, make([]byte, BlockSize), pt)
	}
}
