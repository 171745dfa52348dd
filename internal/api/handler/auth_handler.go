package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rommelaere-renov/site-backend/internal/api/metrics"
	"github.com/rommelaere-renov/site-backend/internal/api/middleware"
	"github.com/rommelaere-renov/site-backend/internal/core/domain"
	"github.com/rommelaere-renov/site-backend/internal/core/ports"
)

// CookieOptions controls the session cookie attributes that depend on the
// deployment origin.
type CookieOptions struct {
	Domain string
	Secure bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieOptions
}

func NewAuthHandler(authService ports.AuthService, cookie CookieOptions) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	// The token travels only in the HTTP-only cookie, never in the body.
	c.SetCookie(h.sessionCookie(token, int(domain.SessionTTL.Seconds())))
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Me returns the current session user, or null for anonymous requests.
//
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  domain.AuthUser
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.SessionUser(c))
}

// Logout clears the session cookie. Idempotent: succeeds whether or not a
// session existed.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  successResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	// Strict on secure origins; Lax keeps local development over plain HTTP
	// working.
	sameSite := http.SameSiteLaxMode
	if h.cookie.Secure {
		sameSite = http.SameSiteStrictMode
	}
	return &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: sameSite,
	}
}
