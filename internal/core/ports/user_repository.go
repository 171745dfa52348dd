package ports

import (
	"context"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

// UserRepository defines the persistence interface for stored accounts.
// Create must surface a duplicate unique-key violation as domain.ErrUserExists.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// UserUpdate carries the fields of a partial user update. Nil means "leave
// unchanged".
type UserUpdate struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *domain.Role
}
