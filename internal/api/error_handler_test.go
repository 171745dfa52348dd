package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec.Code, rec.Body.String()
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "incorrect email or password"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "insufficient permissions"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"service not found", domain.ErrServiceNotFound, http.StatusNotFound, "service not found"},
		{"project not found", domain.ErrProjectNotFound, http.StatusNotFound, "project not found"},
		{"image not found", domain.ErrProjectImageNotFound, http.StatusNotFound, "project image not found"},
		{"message not found", domain.ErrMessageNotFound, http.StatusNotFound, "contact message not found"},
		{"testimonial not found", domain.ErrTestimonialNotFound, http.StatusNotFound, "testimonial not found"},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity, ""},
		{"invalid rating", domain.ErrInvalidRating, http.StatusBadRequest, ""},
		{"rate limited", domain.ErrRateLimited, http.StatusTooManyRequests, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if tc.msg != "" && !strings.Contains(body, tc.msg) {
				t.Fatalf("expected %q in body, got %s", tc.msg, body)
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("moderate testimonial: %w (from approved to rejected)", domain.ErrInvalidTransition)
	code, _ := renderError(t, wrapped)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for wrapped transition error, got %d", code)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "authentication required"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if !strings.Contains(body, "authentication required") {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, body := renderError(t, errors.New("mongo: connection reset"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	// The real cause stays in the logs; the client gets a generic envelope.
	if strings.Contains(body, "mongo") {
		t.Fatalf("internal detail leaked: %s", body)
	}
	if !strings.Contains(body, "internal server error") {
		t.Fatalf("unexpected body: %s", body)
	}
}
