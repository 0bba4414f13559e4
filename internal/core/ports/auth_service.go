package ports

import (
	"context"

	"github.com/clubsuite/backoffice/internal/core/domain"
)

// AuthService verifies credentials and manages the lifetime of issued tokens.
type AuthService interface {
	// Authenticate checks username/password against the credential store.
	// It fails closed: unknown username, wrong password and inactive account
	// all yield domain.ErrInvalidCredentials. On success it returns the
	// sanitized user and a signed session token.
	Authenticate(ctx context.Context, username, password string) (*domain.SanitizedUser, string, error)

	// Revoke invalidates the session behind a previously issued token.
	// Unparseable or already-expired tokens are not an error.
	Revoke(ctx context.Context, token string) error
}
