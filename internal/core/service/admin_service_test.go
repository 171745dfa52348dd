package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

func newAdminService(users ports.UserRepository, services *stubServiceRepo, projects *stubProjectRepo, messages *stubMessageRepo, testimonials *stubTestimonialRepo) *AdminService {
	return NewAdminService(users, services, projects, messages, testimonials, zerolog.Nop())
}

func TestAdminService_GetStats(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "admin@rommelaere-renov.be", "pw", domain.RoleAdmin)
	services := newStubServiceRepo()
	projects := newStubProjectRepo()
	messages := newStubMessageRepo()
	testimonials := newStubTestimonialRepo()

	if _, err := services.Create(context.Background(), &domain.Service{Title: "Bathroom"}); err != nil {
		t.Fatalf("seed service: %v", err)
	}
	if _, err := messages.Create(context.Background(), &domain.ContactMessage{Subject: "x"}); err != nil {
		t.Fatalf("seed message: %v", err)
	}

	svc := newAdminService(users, services, projects, messages, testimonials)
	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.UsersCount != 1 || stats.ServicesCount != 1 || stats.MessagesCount != 1 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	if stats.ProjectsCount != 0 || stats.TestimonialsCount != 0 {
		t.Fatalf("expected zero counters: %+v", stats)
	}
}

// failingCountRepo wraps the user stub so Count always errors.
type failingCountRepo struct {
	*stubUserRepo
}

func (r *failingCountRepo) Count(context.Context) (int64, error) {
	return 0, errors.New("mongo down")
}

func TestAdminService_GetStats_CounterFailureZeroes(t *testing.T) {
	users := &failingCountRepo{stubUserRepo: newStubUserRepo()}
	svc := newAdminService(users, newStubServiceRepo(), newStubProjectRepo(), newStubMessageRepo(), newStubTestimonialRepo())

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("a failing counter must not fail the dashboard: %v", err)
	}
	if stats.UsersCount != 0 {
		t.Fatalf("expected zeroed counter, got %d", stats.UsersCount)
	}
}

func TestAdminService_CreateUser_HashesPassword(t *testing.T) {
	users := newStubUserRepo()
	svc := newAdminService(users, newStubServiceRepo(), newStubProjectRepo(), newStubMessageRepo(), newStubTestimonialRepo())

	created, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:     "Eva",
		Email:    "eva@example.com",
		Password: "plaintext",
		Role:     domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if created.PasswordHash == "plaintext" || created.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("plaintext")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if created.OpenID != "local-login-eva@example.com" {
		t.Fatalf("unexpected open id: %s", created.OpenID)
	}
}

func TestAdminService_CreateUser_InvalidRoleDefaultsToUser(t *testing.T) {
	users := newStubUserRepo()
	svc := newAdminService(users, newStubServiceRepo(), newStubProjectRepo(), newStubMessageRepo(), newStubTestimonialRepo())

	created, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:     "Eva",
		Email:    "eva@example.com",
		Password: "pw",
		Role:     domain.Role("superuser"),
	})
	if err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	if created.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %s", created.Role)
	}
}

func TestAdminService_CreateUser_Duplicate(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "eva@example.com", "pw", domain.RoleUser)
	svc := newAdminService(users, newStubServiceRepo(), newStubProjectRepo(), newStubMessageRepo(), newStubTestimonialRepo())

	if _, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Name:     "Eva",
		Email:    "eva@example.com",
		Password: "pw",
		Role:     domain.RoleUser,
	}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAdminService_UpdateUser_RehashesPassword(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "eva@example.com", "oldpw", domain.RoleUser)
	existing, _ := users.FindByEmail(context.Background(), "eva@example.com")
	svc := newAdminService(users, newStubServiceRepo(), newStubProjectRepo(), newStubMessageRepo(), newStubTestimonialRepo())

	newPassword := "newpw"
	role := domain.RoleAdmin
	if err := svc.UpdateUser(context.Background(), existing.ID, ports.UpdateUserInput{
		Password: &newPassword,
		Role:     &role,
	}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	updated, _ := users.FindByEmail(context.Background(), "eva@example.com")
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("role not updated: %s", updated.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpw")); err != nil {
		t.Fatalf("new password does not verify: %v", err)
	}
}

func TestAdminService_UpdateUser_UnknownRole(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "eva@example.com", "pw", domain.RoleUser)
	existing, _ := users.FindByEmail(context.Background(), "eva@example.com")
	svc := newAdminService(users, newStubServiceRepo(), newStubProjectRepo(), newStubMessageRepo(), newStubTestimonialRepo())

	role := domain.Role("superuser")
	if err := svc.UpdateUser(context.Background(), existing.ID, ports.UpdateUserInput{Role: &role}); err == nil {
		t.Fatalf("expected error for unknown role")
	}
	unchanged, _ := users.FindByEmail(context.Background(), "eva@example.com")
	if unchanged.Role != domain.RoleUser {
		t.Fatalf("role changed by rejected update: %s", unchanged.Role)
	}
}

func TestAdminService_DeleteUser(t *testing.T) {
	users := newStubUserRepo()
	seedUser(t, users, "eva@example.com", "pw", domain.RoleUser)
	existing, _ := users.FindByEmail(context.Background(), "eva@example.com")
	svc := newAdminService(users, newStubServiceRepo(), newStubProjectRepo(), newStubMessageRepo(), newStubTestimonialRepo())

	if err := svc.DeleteUser(context.Background(), existing.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if n, _ := users.Count(context.Background()); n != 0 {
		t.Fatalf("expected empty store, got %d", n)
	}
}
