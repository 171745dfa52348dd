package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

const (
	// BootstrapAdminEmail is the single reserved address auto-provisioned as
	// an admin on its first login attempt.
	BootstrapAdminEmail = "admin@rommelaere-renov.be"
	// bootstrapAdminPassword seeds the auto-provisioned account; the stored
	// value is always its bcrypt hash.
	bootstrapAdminPassword = "R0mmel@er&20"

	bcryptCost = 10
)

// AuthService verifies credentials against the user store and mints signed
// session tokens.
type AuthService struct {
	users    ports.UserRepository
	secret   string
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, secret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = domain.SessionTTL
	}
	return &AuthService{users: users, secret: secret, tokenTTL: tokenTTL, log: log}
}

// Login authenticates an email/password pair. Every failure mode — unknown
// email, account without a stored hash, wrong password — collapses into
// domain.ErrInvalidCredentials so callers cannot tell which part failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.AuthUser, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) && email == BootstrapAdminEmail {
		user, err = s.bootstrapAdmin(ctx)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if user.PasswordHash == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("session issued")

	return token, &domain.AuthUser{
		ID:     user.ID,
		OpenID: user.OpenID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
	}, nil
}

// bootstrapAdmin provisions the reserved admin account on first login. A
// duplicate-key error from a concurrent first login is treated as "already
// exists"; either way the persisted record is re-fetched.
func (s *AuthService) bootstrapAdmin(ctx context.Context) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrapAdminPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.users.Create(ctx, &domain.User{
		OpenID:       "local-login-" + BootstrapAdminEmail,
		Email:        BootstrapAdminEmail,
		PasswordHash: string(hash),
		Name:         "Admin Local",
		Role:         domain.RoleAdmin,
		LoginMethod:  "local",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil && !errors.Is(err, domain.ErrUserExists) {
		return nil, fmt.Errorf("bootstrap admin: %w", err)
	}

	s.log.Info().Str("email", BootstrapAdminEmail).Msg("bootstrap admin provisioned")
	return s.users.FindByEmail(ctx, BootstrapAdminEmail)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.OpenID,
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
