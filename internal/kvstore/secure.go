package kvstore

import (
	"context"
	"fmt"
	"os"

	"github.com/cjsavings/savings-client/internal/common"
	"github.com/cjsavings/savings-client/internal/cryptox"
)

const (
	secretLen = 32
	saltLen   = 16
)

// Secure wraps a Repository and encrypts every value at rest with AES-GCM.
// It is the stand-in for the platform's secure storage: same contract as
// the wrapped store, including (nil, nil) for an absent key.
type Secure struct {
	inner Repository
	key   []byte
}

// NewSecure derives the encryption key from the given secret and salt
// (see LoadOrCreateKeyMaterial) and returns the encrypting wrapper.
func NewSecure(inner Repository, secret, salt []byte) *Secure {
	return &Secure{inner: inner, key: cryptox.DeriveKey(secret, salt)}
}

// LoadOrCreateKeyMaterial reads the local key-material file, generating it
// on first use. The file holds the random secret followed by the KDF salt
// and is created with owner-only permissions.
func LoadOrCreateKeyMaterial(path string) (secret, salt []byte, err error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if len(data) != secretLen+saltLen {
			return nil, nil, fmt.Errorf("key material %s has unexpected size %d", path, len(data))
		}
		return data[:secretLen], data[secretLen:], nil
	}
	if !os.IsNotExist(err) {
		return nil, nil, fmt.Errorf("failed to read key material: %w", err)
	}

	secret = common.GenerateRandByteArray(secretLen)
	salt = common.GenerateRandByteArray(saltLen)
	if err := os.WriteFile(path, append(append([]byte{}, secret...), salt...), 0o600); err != nil {
		return nil, nil, fmt.Errorf("failed to write key material: %w", err)
	}
	return secret, salt, nil
}

func (s *Secure) Get(ctx context.Context, key string) ([]byte, error) {
	blob, err := s.inner.Get(ctx, key)
	if err != nil || blob == nil {
		return nil, err
	}
	value, err := cryptox.Decrypt(blob, s.key)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt kv[%s]: %w", key, err)
	}
	return value, nil
}

func (s *Secure) Set(ctx context.Context, key string, value []byte) error {
	blob, err := cryptox.Encrypt(value, s.key)
	if err != nil {
		return fmt.Errorf("failed to encrypt kv[%s]: %w", key, err)
	}
	return s.inner.Set(ctx, key, blob)
}

func (s *Secure) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

func (s *Secure) Clear(ctx context.Context) error {
	return s.inner.Clear(ctx)
}

func (s *Secure) List(ctx context.Context) (map[string][]byte, error) {
	raw, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[string][]byte, len(raw))
	for key, blob := range raw {
		value, err := cryptox.Decrypt(blob, s.key)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt kv[%s]: %w", key, err)
		}
		result[key] = value
	}
	return result, nil
}
