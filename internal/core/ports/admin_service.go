package ports

import (
	"context"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

// AdminService covers the dashboard extras: aggregate stats and account
// management. All operations are admin-gated at the transport layer.
type AdminService interface {
	GetStats(ctx context.Context) (*Stats, error)
	GetUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) error
	DeleteUser(ctx context.Context, id string) error
}

// UpdateUserInput carries a partial account update. Password, when set, is
// the plain text; the service hashes it before it reaches the repository.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *domain.Role
}

// Stats is the dashboard counter block.
type Stats struct {
	ServicesCount     int64 `json:"services_count"`
	ProjectsCount     int64 `json:"projects_count"`
	TestimonialsCount int64 `json:"testimonials_count"`
	MessagesCount     int64 `json:"messages_count"`
	UsersCount        int64 `json:"users_count"`
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}
