package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "local-login-admin@rommelaere-renov.be",
		"id":    "u1",
		"email": "admin@rommelaere-renov.be",
		"name":  "Admin Local",
		"role":  string(domain.RoleAdmin),
		"iat":   time.Now().Add(-time.Minute).Unix(),
		"exp":   exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// runSession sends a request through the Session middleware and reports the
// user the inner handler observed.
func runSession(t *testing.T, cookie string) (*domain.AuthUser, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.Header.Set("Cookie", domain.SessionCookieName+"="+cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *domain.AuthUser
	handler := Session(testSecret, zerolog.Nop())(func(c echo.Context) error {
		seen = SessionUser(c)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return seen, rec
}

func TestSession_ValidCookie(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(time.Hour))
	user, rec := runSession(t, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if user == nil {
		t.Fatalf("expected authenticated user")
	}
	if user.Email != "admin@rommelaere-renov.be" {
		t.Fatalf("unexpected email: %s", user.Email)
	}
	if !user.IsAdmin() {
		t.Fatalf("expected admin user, got role %s", user.Role)
	}
}

func TestSession_NoCookie(t *testing.T) {
	user, rec := runSession(t, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if user != nil {
		t.Fatalf("expected anonymous, got %+v", user)
	}
}

func TestSession_ExpiredToken(t *testing.T) {
	token := signToken(t, testSecret, time.Now().Add(-time.Hour))
	user, rec := runSession(t, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expired token must not error the request, got %d", rec.Code)
	}
	if user != nil {
		t.Fatalf("expired token must yield anonymous, got %+v", user)
	}
}

func TestSession_WrongSignature(t *testing.T) {
	token := signToken(t, "other-secret", time.Now().Add(time.Hour))
	user, rec := runSession(t, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if user != nil {
		t.Fatalf("badly signed token must yield anonymous, got %+v", user)
	}
}

func TestSession_GarbageToken(t *testing.T) {
	user, rec := runSession(t, "not-a-jwt")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if user != nil {
		t.Fatalf("garbage token must yield anonymous, got %+v", user)
	}
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()

	run := func(user *domain.AuthUser) (bool, error) {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if user != nil {
			c.Set(userContextKey, user)
		}
		called := false
		err := RequireAdmin()(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})(c)
		return called, err
	}

	t.Run("anonymous", func(t *testing.T) {
		called, err := run(nil)
		if called {
			t.Fatalf("handler must not run for anonymous requests")
		}
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %v", err)
		}
	})

	t.Run("non-admin", func(t *testing.T) {
		called, err := run(&domain.AuthUser{ID: "u2", Email: "user@example.com", Role: domain.RoleUser})
		if called {
			t.Fatalf("handler must not run for non-admin users")
		}
		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %v", err)
		}
	})

	t.Run("admin", func(t *testing.T) {
		called, err := run(&domain.AuthUser{ID: "u1", Email: "admin@rommelaere-renov.be", Role: domain.RoleAdmin})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !called {
			t.Fatalf("handler should run for admins")
		}
	})
}
