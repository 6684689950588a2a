// Package credstore persists the session token across client restarts.
// It is the sole source of truth for "is a user logged in": the token's
// presence alone is the authentication signal, no shape or validity checks.
package credstore

import "context"

// Store holds at most one opaque session token.
//
// Contract:
//   - Set persists the token, overwriting any existing value.
//   - Get returns the current token, or "" when none is stored.
//   - Clear removes the token; clearing an empty store is a no-op success.
type Store interface {
	Set(ctx context.Context, token string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
