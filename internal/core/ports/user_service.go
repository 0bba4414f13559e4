package ports

import (
	"context"

	"github.com/clubsuite/backoffice/internal/core/domain"
)

// CreateUserInput carries the fields required to register a user.
type CreateUserInput struct {
	Username string
	Password string
	Role     domain.Role
	IsActive bool
}

// UpdateUserInput carries optional field updates; nil means unchanged.
// A non-nil Password is re-hashed before persisting.
type UpdateUserInput struct {
	Password *string
	Role     *domain.Role
	IsActive *bool
}

// UserService exposes the administrative CRUD surface over user records.
// All returned users are sanitized.
type UserService interface {
	List(ctx context.Context) ([]domain.SanitizedUser, error)
	Get(ctx context.Context, id string) (*domain.SanitizedUser, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.SanitizedUser, error)
	Update(ctx context.Context, id string, in UpdateUserInput) (*domain.SanitizedUser, error)
	Delete(ctx context.Context, id string) error
}
