package service

import (
	"context"
	"testing"

	"github.com/clubsuite/backoffice/internal/core/domain"
)

// stubAuth accepts a single username/password pair.
type stubAuth struct {
	username string
	password string
	role     domain.Role
	revoked  []string
}

func (a *stubAuth) Authenticate(_ context.Context, username, password string) (*domain.SanitizedUser, string, error) {
	if username != a.username || password != a.password {
		return nil, "", domain.ErrInvalidCredentials
	}
	return &domain.SanitizedUser{ID: "id-1", Username: username, Role: a.role, IsActive: true}, "token-1", nil
}

func (a *stubAuth) Revoke(_ context.Context, token string) error {
	a.revoked = append(a.revoked, token)
	return nil
}

type memVault struct {
	user  *domain.SanitizedUser
	token string
}

func (v *memVault) Save(user domain.SanitizedUser, token string) error {
	v.user = &user
	v.token = token
	return nil
}

func (v *memVault) Clear() error {
	v.user = nil
	v.token = ""
	return nil
}

func TestSession_LoginSuccess(t *testing.T) {
	s := NewSession(&stubAuth{username: "alice", password: "pw", role: domain.RoleAdmin}, nil)

	if !s.Login(context.Background(), "alice", "pw") {
		t.Fatalf("expected login to succeed")
	}
	if !s.Authenticated() {
		t.Fatalf("expected authenticated state")
	}
	user, ok := s.CurrentUser()
	if !ok || user.Username != "alice" {
		t.Fatalf("unexpected current user: %+v", user)
	}
	if s.Token() != "token-1" {
		t.Fatalf("unexpected token: %q", s.Token())
	}
}

func TestSession_LoginFailureKeepsState(t *testing.T) {
	s := NewSession(&stubAuth{username: "alice", password: "pw"}, nil)

	if s.Login(context.Background(), "alice", "wrong") {
		t.Fatalf("expected login to fail")
	}
	if s.Authenticated() {
		t.Fatalf("failed login must not authenticate")
	}
	if _, ok := s.CurrentUser(); ok {
		t.Fatalf("failed login must not expose a user")
	}
	if s.Token() != "" {
		t.Fatalf("failed login must not expose a token")
	}
}

func TestSession_HasRole(t *testing.T) {
	s := NewSession(&stubAuth{username: "alice", password: "pw", role: domain.RoleEmployee}, nil)

	if s.HasRole(domain.RoleEmployee) {
		t.Fatalf("unauthenticated session must not hold any role")
	}
	if s.HasAnyRole(domain.RoleAdmin, domain.RoleEmployee) {
		t.Fatalf("unauthenticated session must not hold any role")
	}

	s.Login(context.Background(), "alice", "pw")

	if !s.HasRole(domain.RoleEmployee) {
		t.Fatalf("expected employee role")
	}
	if s.HasRole(domain.RoleAdmin) {
		t.Fatalf("did not expect admin role")
	}
	if !s.HasAnyRole(domain.RoleAdmin, domain.RoleEmployee) {
		t.Fatalf("expected HasAnyRole to match employee")
	}
	if s.HasAnyRole(domain.RoleAdmin) {
		t.Fatalf("HasAnyRole must only match the held role")
	}
}

func TestSession_LogoutIdempotent(t *testing.T) {
	auth := &stubAuth{username: "alice", password: "pw"}
	s := NewSession(auth, nil)
	s.Login(context.Background(), "alice", "pw")

	s.Logout(context.Background())
	if s.Authenticated() || s.Token() != "" {
		t.Fatalf("logout must clear all session state")
	}
	if len(auth.revoked) != 1 || auth.revoked[0] != "token-1" {
		t.Fatalf("expected one revocation of token-1, got %v", auth.revoked)
	}

	// Logging out again is a no-op, not an error, and revokes nothing.
	s.Logout(context.Background())
	if s.Authenticated() {
		t.Fatalf("logout must be idempotent")
	}
	if len(auth.revoked) != 1 {
		t.Fatalf("second logout must not revoke again, got %v", auth.revoked)
	}
}

func TestSession_VaultPersistence(t *testing.T) {
	vault := &memVault{}
	s := NewSession(&stubAuth{username: "alice", password: "pw", role: domain.RoleAdmin}, vault)

	s.Login(context.Background(), "alice", "pw")
	if vault.user == nil || vault.token != "token-1" {
		t.Fatalf("login must persist the session to the vault")
	}

	// A fresh session restores from whatever the vault held.
	restored := NewSession(&stubAuth{}, nil)
	restored.Restore(*vault.user, vault.token)
	if !restored.HasRole(domain.RoleAdmin) || restored.Token() != "token-1" {
		t.Fatalf("restore did not rehydrate the session")
	}

	s.Logout(context.Background())
	if vault.user != nil || vault.token != "" {
		t.Fatalf("logout must clear the vault")
	}
}
