package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

// AdminService implements the dashboard stats and account management.
type AdminService struct {
	users        ports.UserRepository
	services     ports.ServiceRepository
	projects     ports.ProjectRepository
	messages     ports.MessageRepository
	testimonials ports.TestimonialRepository
	log          zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	services ports.ServiceRepository,
	projects ports.ProjectRepository,
	messages ports.MessageRepository,
	testimonials ports.TestimonialRepository,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:        users,
		services:     services,
		projects:     projects,
		messages:     messages,
		testimonials: testimonials,
		log:          log,
	}
}

// GetStats aggregates the dashboard counters. A failing counter zeroes its
// slot rather than failing the whole dashboard.
func (s *AdminService) GetStats(ctx context.Context) (*ports.Stats, error) {
	stats := &ports.Stats{}
	stats.ServicesCount = s.count(ctx, "services", s.services.Count)
	stats.ProjectsCount = s.count(ctx, "projects", s.projects.Count)
	stats.TestimonialsCount = s.count(ctx, "testimonials", s.testimonials.Count)
	stats.MessagesCount = s.count(ctx, "messages", s.messages.Count)
	stats.UsersCount = s.count(ctx, "users", s.users.Count)
	return stats, nil
}

func (s *AdminService) count(ctx context.Context, name string, fn func(context.Context) (int64, error)) int64 {
	n, err := fn(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("collection", name).Msg("stats count failed")
		return 0
	}
	return n
}

func (s *AdminService) GetUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if !in.Role.Valid() {
		in.Role = domain.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		OpenID:       "local-login-" + in.Email,
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         in.Role,
		LoginMethod:  "local",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) error {
	if in.Role != nil && !in.Role.Valid() {
		return fmt.Errorf("update user: unknown role %q", *in.Role)
	}

	update := ports.UserUpdate{Name: in.Name, Email: in.Email, Role: in.Role}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		h := string(hash)
		update.PasswordHash = &h
	}
	return s.users.Update(ctx, id, update)
}

func (s *AdminService) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
