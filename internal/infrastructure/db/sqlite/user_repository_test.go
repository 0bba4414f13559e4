package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/clubsuite/backoffice/internal/core/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// In-memory databases are per-connection; keep the pool at one.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testUser(username string, role domain.Role) *domain.User {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.User{
		ID:           "id-" + username,
		Username:     username,
		PasswordHash: "$2a$10$hash-" + username,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	want := testUser("alice", domain.RoleAdmin)
	created, err := repo.Create(ctx, want)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != want.ID || created.Username != "alice" || created.Role != domain.RoleAdmin {
		t.Fatalf("unexpected created user: %+v", created)
	}
	if !created.CreatedAt.Equal(want.CreatedAt) {
		t.Fatalf("created_at not round-tripped: %v != %v", created.CreatedAt, want.CreatedAt)
	}

	byName, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if byName.PasswordHash != want.PasswordHash {
		t.Fatalf("hash not persisted")
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, testUser("bob", domain.RoleEmployee)); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := testUser("bob", domain.RoleEmployee)
	dup.ID = "id-other"
	if _, err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	if _, err := repo.GetByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_ListOrdered(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"carol", "alice", "bob"} {
		if _, err := repo.Create(ctx, testUser(name, domain.RoleEmployee)); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i, want := range []string{"alice", "bob", "carol"} {
		if users[i].Username != want {
			t.Fatalf("expected %s at index %d, got %s", want, i, users[i].Username)
		}
	}
}

func TestUserRepository_Update(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user, err := repo.Create(ctx, testUser("dan", domain.RoleEmployee))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	user.Role = domain.RoleAdmin
	user.IsActive = false
	user.PasswordHash = "$2a$10$new-hash"
	user.UpdatedAt = time.Now().UTC().Add(time.Minute).Truncate(time.Second)

	updated, err := repo.Update(ctx, user)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Role != domain.RoleAdmin || updated.IsActive || updated.PasswordHash != "$2a$10$new-hash" {
		t.Fatalf("update not persisted: %+v", updated)
	}
}

func TestUserRepository_UpdateMissing(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	if _, err := repo.Update(context.Background(), testUser("ghost", domain.RoleEmployee)); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_DeleteAndCount(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user, err := repo.Create(ctx, testUser("erin", domain.RoleEmployee))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if n, _ := repo.Count(ctx); n != 1 {
		t.Fatalf("expected count 1, got %d", n)
	}
	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n, _ := repo.Count(ctx); n != 0 {
		t.Fatalf("expected count 0, got %d", n)
	}
	if err := repo.Delete(ctx, user.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound on second delete, got %v", err)
	}
}
