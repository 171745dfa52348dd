package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rommelaere-renov/site-backend/internal/api/middleware"
	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

type stubAuthService struct {
	token string
	user  *domain.AuthUser
	err   error

	gotEmail    string
	gotPassword string
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.AuthUser, error) {
	s.gotEmail = email
	s.gotPassword = password
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.user, nil
}

func newAuthTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == domain.SessionCookieName {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Login_SetsCookie(t *testing.T) {
	svc := &stubAuthService{
		token: "signed-token",
		user:  &domain.AuthUser{ID: "u1", Email: "admin@rommelaere-renov.be", Role: domain.RoleAdmin},
	}
	h := NewAuthHandler(svc, CookieOptions{Domain: "rommelaere-renov.be", Secure: true})

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"admin@rommelaere-renov.be","password":"R0mmel@er&20"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotEmail != "admin@rommelaere-renov.be" {
		t.Fatalf("service got email %q", svc.gotEmail)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil {
		t.Fatalf("expected session cookie")
	}
	if cookie.Value != "signed-token" {
		t.Fatalf("unexpected cookie value %q", cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure {
		t.Fatalf("cookie must be http-only and secure, got %+v", cookie)
	}
	if cookie.MaxAge != int(domain.SessionTTL.Seconds()) {
		t.Fatalf("unexpected max age %d", cookie.MaxAge)
	}

	// The token must never leak into the response body.
	if strings.Contains(rec.Body.String(), "signed-token") {
		t.Fatalf("token leaked into body: %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_Failure(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, CookieOptions{})

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"ghost@example.com","password":"nope"}`)
	err := h.Login(c)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
	if cookie := sessionCookieFrom(rec); cookie != nil {
		t.Fatalf("failed login must not set a cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, CookieOptions{})

	cases := map[string]string{
		"missing email": `{"password":"x"}`,
		"bad email":     `{"email":"not-an-email","password":"x"}`,
		"no password":   `{"email":"a@b.c"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/login", body)
			err := h.Login(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok || httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
			if svc.gotEmail != "" {
				t.Fatalf("service must not be called on invalid payload")
			}
		})
	}
}

func TestAuthHandler_Me_Anonymous(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, CookieOptions{})

	c, rec := newAuthTestContext(t, http.MethodGet, "/api/auth/me", "")
	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "null" {
		t.Fatalf("expected null body for anonymous, got %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_Authenticated(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, CookieOptions{})

	c, rec := newAuthTestContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set("session_user", &domain.AuthUser{ID: "u1", Email: "admin@rommelaere-renov.be", Role: domain.RoleAdmin})
	if err := h.Me(c); err != nil {
		t.Fatalf("me failed: %v", err)
	}
	if user := middleware.SessionUser(c); user == nil {
		t.Fatalf("expected user in context")
	}
	if !strings.Contains(rec.Body.String(), "admin@rommelaere-renov.be") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, CookieOptions{})

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookieFrom(rec)
	if cookie == nil {
		t.Fatalf("expected expiring session cookie")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected cleared cookie, got value=%q maxAge=%d", cookie.Value, cookie.MaxAge)
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
