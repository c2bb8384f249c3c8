// Package cryptox holds the primitives used to keep the session token
// encrypted at rest: Argon2id key derivation plus AES-GCM seal/open.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
)

const nonceSize = 12

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveKey derives a 32-byte AES-256 key from a locally stored secret and
// salt using Argon2id.
func DeriveKey(secret, salt []byte) []byte {
	return idKey(secret, salt)
}

// Encrypt seals plaintext with AES-GCM under key. The random 12-byte nonce
// is prepended to the returned ciphertext so the blob is self-contained.
func Encrypt(plaintext, key []byte) ([]byte, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a blob produced by Encrypt. Tampered or truncated input
// yields an error, never garbage plaintext.
func Decrypt(blob, key []byte) ([]byte, error) {
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return aesgcm.Open(nil, blob[:nonceSize], blob[nonceSize:], nil)
}
