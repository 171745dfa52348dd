package domain

import (
	"errors"
	"time"
)

// Role is the closed set of roles a stored account can hold.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// SessionCookieName is the shared cookie constant used by the login handler,
// the logout handler and the session middleware.
const SessionCookieName = "renov_session"

// SessionTTL is the fixed lifetime of a session token and its cookie.
const SessionTTL = 7 * 24 * time.Hour

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("incorrect email or password")
var ErrForbidden = errors.New("insufficient permissions")

// User models a stored account. PasswordHash never crosses the API boundary.
type User struct {
	ID           string    `json:"id"`
	OpenID       string    `json:"open_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	LoginMethod  string    `json:"login_method,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthUser is the identity reconstructed from a verified session token.
// It carries only the claims embedded at login time.
type AuthUser struct {
	ID     string `json:"id"`
	OpenID string `json:"open_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the session user holds the admin role.
func (u *AuthUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
