// Package kvstore provides the local persistent key-value storage used for
// the device identifier and the session token. The Repository interface is
// the stand-in for the mobile platform's general/secure storage: screens and
// services never touch SQLite directly, and tests substitute the in-memory
// implementation.
package kvstore

import "context"

// Repository is an opaque string-keyed byte store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set upserts.
//   - Delete is idempotent: deleting an absent key is not an error.
//   - Storage failures always propagate; none of the methods swallow errors.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	List(ctx context.Context) (map[string][]byte, error)
}
