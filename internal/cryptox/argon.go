package cryptox

import "golang.org/x/crypto/argon2"

// Argon2id, one pass over 64 MiB with 4 lanes; the input secret is a
// random 32-byte value, not a user password.
func idKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}
