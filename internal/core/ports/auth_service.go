package ports

import (
	"context"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

// AuthService verifies credentials and mints session tokens.
type AuthService interface {
	// Login authenticates the email/password pair and returns a signed
	// session token plus the authenticated identity. Bad credentials of any
	// kind yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.AuthUser, error)
}
