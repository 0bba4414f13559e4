package ports

import (
	"context"
	"time"
)

// SessionStore tracks which issued token IDs are still live. Entries expire on
// their own after the token lifetime; Revoke removes one early.
type SessionStore interface {
	Register(ctx context.Context, tokenID string, ttl time.Duration) error
	Revoke(ctx context.Context, tokenID string) error
	IsActive(ctx context.Context, tokenID string) (bool, error)
}
