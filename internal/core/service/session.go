package service

import (
	"context"
	"sync"

	"github.com/clubsuite/backoffice/internal/core/domain"
	"github.com/clubsuite/backoffice/internal/core/ports"
)

// TokenVault persists a session across process restarts (the desktop shell
// keeps one on disk, a browser build keeps one in storage). A nil vault
// disables persistence.
type TokenVault interface {
	Save(user domain.SanitizedUser, token string) error
	Clear() error
}

// Session is the client-held authentication context: unauthenticated until a
// successful Login, back to unauthenticated on Logout. It never exposes
// partial state — the user and token are set together or not at all.
// Safe for concurrent use.
type Session struct {
	auth  ports.AuthService
	vault TokenVault

	mu    sync.RWMutex
	user  *domain.SanitizedUser
	token string
}

func NewSession(auth ports.AuthService, vault TokenVault) *Session {
	return &Session{auth: auth, vault: vault}
}

// Login verifies credentials and, on success, transitions to authenticated.
// Any failure leaves the session exactly as it was and returns false.
func (s *Session) Login(ctx context.Context, username, password string) bool {
	user, token, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		return false
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()

	if s.vault != nil {
		_ = s.vault.Save(*user, token)
	}
	return true
}

// Logout discards the held user and token unconditionally. Server-side
// revocation is best-effort; the local transition always happens. Idempotent.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	token := s.token
	s.user = nil
	s.token = ""
	s.mu.Unlock()

	if token != "" {
		_ = s.auth.Revoke(ctx, token)
	}
	if s.vault != nil {
		_ = s.vault.Clear()
	}
}

// Restore rehydrates a previously persisted session, e.g. after a reload.
func (s *Session) Restore(user domain.SanitizedUser, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	s.token = token
}

// Authenticated reports whether a login is in effect.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// CurrentUser returns the logged-in user, if any.
func (s *Session) CurrentUser() (domain.SanitizedUser, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domain.SanitizedUser{}, false
	}
	return *s.user, true
}

// Token returns the held session token, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// HasRole reports whether the session's user holds role. Always false when
// unauthenticated.
func (s *Session) HasRole(role domain.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == role
}

// HasAnyRole reports whether the session's user holds one of roles.
func (s *Session) HasAnyRole(roles ...domain.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	for _, r := range roles {
		if s.user.Role == r {
			return true
		}
	}
	return false
}
