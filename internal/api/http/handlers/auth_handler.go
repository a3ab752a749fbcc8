package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/scheduling-service/internal/api/dto"
	"github.com/spec-kit/scheduling-service/internal/auth"
	"github.com/spec-kit/scheduling-service/internal/service"
	apperrors "github.com/spec-kit/scheduling-service/pkg/util/errorutil"
)

// AuthHandler manages session endpoints.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{service: authService}
}

// Login POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	_, pair, err := h.service.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	setAuthCookie(c, auth.AccessCookieName, pair.Access, pair.AccessExpiresAt)
	setAuthCookie(c, auth.RefreshCookieName, pair.Refresh, pair.RefreshExpiresAt)
	return c.JSON(fiber.Map{"msg": "login success"})
}

// Refresh POST /refresh.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	refreshToken := c.Cookies(auth.RefreshCookieName)
	if refreshToken == "" {
		return apperrors.NewUnauthorized("invalid refresh token")
	}

	access, expiresAt, err := h.service.Refresh(c.Context(), refreshToken)
	if err != nil {
		return err
	}

	setAuthCookie(c, auth.AccessCookieName, access, expiresAt)
	return c.JSON(fiber.Map{"msg": "refreshed"})
}

// Logout POST /logout. Revokes whatever tokens the caller still holds and
// clears both cookies.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.service.Logout(c.Context(), c.Cookies(auth.AccessCookieName), c.Cookies(auth.RefreshCookieName))

	clearAuthCookie(c, auth.AccessCookieName)
	clearAuthCookie(c, auth.RefreshCookieName)
	return c.JSON(fiber.Map{"msg": "logout success"})
}

// Protected GET /protected. Session introspection for the frontend.
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("not authenticated")
	}
	return c.JSON(fiber.Map{
		"msg":  "ok",
		"user": principal.User.Email,
		"role": principal.Identity.Role,
	})
}

func setAuthCookie(c *fiber.Ctx, name, value string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  expires,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearAuthCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
