// Package session owns the bearer token issued by the backend at login.
package session

import (
	"context"
	"fmt"

	"github.com/cjsavings/savings-client/internal/kvstore"
)

// tokenKey is the fixed secure-storage key holding the session token.
const tokenKey = "cj_token"

// Store persists the session token in the secure key-value store. The
// store is the source of truth: Token always reads through, so the value
// cannot diverge from persisted state across restarts.
type Store struct {
	repo kvstore.Repository
}

func NewStore(repo kvstore.Repository) *Store {
	return &Store{repo: repo}
}

// Token returns the current token, or "" when no session exists.
func (s *Store) Token(ctx context.Context) (string, error) {
	value, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		return "", fmt.Errorf("failed to read session token: %w", err)
	}
	return string(value), nil
}

// SetToken persists the token issued at login.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, tokenKey, []byte(token)); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	return nil
}

// ClearToken deletes the token. Idempotent; a failure to delete must reach
// the caller, since a stale token left behind would re-admit the user on
// next launch.
func (s *Store) ClearToken(ctx context.Context) error {
	if err := s.repo.Delete(ctx, tokenKey); err != nil {
		return fmt.Errorf("failed to clear session token: %w", err)
	}
	return nil
}
