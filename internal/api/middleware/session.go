package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rommelaere-renov/site-backend/internal/core/domain"
)

// userContextKey is the echo context key carrying the *domain.AuthUser.
const userContextKey = "session_user"

// Session reconstructs the authenticated user from the session cookie on
// every request. A missing, malformed, expired or badly signed token yields
// an anonymous context — never an error to the caller.
func Session(secret string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := sessionCookieValue(c)
			if raw == "" {
				return next(c)
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !tkn.Valid {
				log.Warn().Err(err).Msg("invalid session token, continuing anonymous")
				return next(c)
			}

			c.Set(userContextKey, &domain.AuthUser{
				ID:     claimString(claims, "id"),
				OpenID: claimString(claims, "sub"),
				Email:  claimString(claims, "email"),
				Name:   claimString(claims, "name"),
				Role:   domain.Role(claimString(claims, "role")),
			})
			return next(c)
		}
	}
}

// sessionCookieValue reads the session cookie from the parsed jar, falling
// back to splitting the raw Cookie header ourselves.
func sessionCookieValue(c echo.Context) string {
	if cookie, err := c.Cookie(domain.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return cookieFromHeader(c.Request().Header.Get("Cookie"), domain.SessionCookieName)
}

func cookieFromHeader(header, name string) string {
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, name+"=") {
			return strings.TrimPrefix(part, name+"=")
		}
	}
	return ""
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

// SessionUser returns the authenticated user, or nil for anonymous requests.
func SessionUser(c echo.Context) *domain.AuthUser {
	user, _ := c.Get(userContextKey).(*domain.AuthUser)
	return user
}

// RequireAdmin gates mutations: 401 without a session user, 403 when the
// session role is anything but admin. Fails closed on missing claims.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := SessionUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			return next(c)
		}
	}
}
