package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("salt"))

	blob, err := Encrypt([]byte("bearer-token"), key)
	require.NoError(t, err)

	got, err := Decrypt(blob, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("bearer-token"), got)
}

func TestDecrypt_TamperedCiphertext(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("salt"))

	blob, err := Encrypt([]byte("payload"), key)
	require.NoError(t, err)

	blob[len(blob)-1] ^= 0xFF
	_, err = Decrypt(blob, key)
	require.Error(t, err)
}

func TestDecrypt_WrongKey(t *testing.T) {
	blob, err := Encrypt([]byte("payload"), DeriveKey([]byte("a"), []byte("s")))
	require.NoError(t, err)

	_, err = Decrypt(blob, DeriveKey([]byte("b"), []byte("s")))
	require.Error(t, err)
}

func TestDecrypt_TooShort(t *testing.T) {
	key := DeriveKey([]byte("secret"), []byte("salt"))
	_, err := Decrypt([]byte{1, 2, 3}, key)
	require.ErrorIs(t, err, ErrCiphertextTooShort)
}

func TestDeriveKey_Deterministic(t *testing.T) {
	a := DeriveKey([]byte("secret"), []byte("salt"))
	b := DeriveKey([]byte("secret"), []byte("salt"))
	c := DeriveKey([]byte("secret"), []byte("other"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 32)
}
