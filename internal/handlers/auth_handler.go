package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cliptube/cliptube-backend/internal/config"
	"github.com/cliptube/cliptube-backend/internal/dto"
	"github.com/cliptube/cliptube-backend/internal/middleware"
	"github.com/cliptube/cliptube-backend/internal/services"
)

const (
	accessCookie  = "access_token"
	refreshCookie = "refresh_token"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Register(c.Context(), &req)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return writeError(c, err)
	}

	h.setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	return c.JSON(resp)
}

// Refresh rotates the session. The refresh token is read from the cookie
// first, body as fallback for non-browser clients. On failure no cookies
// are touched.
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	presented := c.Cookies(refreshCookie)
	if presented == "" {
		var req dto.RefreshRequest
		if err := c.BodyParser(&req); err == nil {
			presented = req.RefreshToken
		}
	}

	resp, err := h.authService.Refresh(c.Context(), presented)
	if err != nil {
		return writeError(c, err)
	}

	h.setAuthCookies(c, resp.AccessToken, resp.RefreshToken)
	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.authService.Logout(c.Context(), userID); err != nil {
		return writeError(c, err)
	}

	h.clearAuthCookies(c)
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.ChangePassword(c.Context(), userID, &req); err != nil {
		return writeError(c, err)
	}

	// Session revoked; the client must log in again.
	h.clearAuthCookies(c)
	return c.JSON(fiber.Map{"message": "Password changed, please log in again"})
}

// Me returns the identity projection from the access token claims.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id, err := middleware.CurrentIdentity(c)
	if err != nil {
		return unauthorized(c)
	}

	return c.JSON(dto.UserResponse{
		ID:       id.UserID,
		Username: id.Username,
		Email:    id.Email,
	})
}

func (h *AuthHandler) setAuthCookies(c *fiber.Ctx, access, refresh string) {
	c.Cookie(&fiber.Cookie{
		Name:     accessCookie,
		Value:    access,
		Domain:   h.cfg.CookieDomain,
		Expires:  time.Now().Add(h.cfg.JWTAccessExpiry),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookie,
		Value:    refresh,
		Domain:   h.cfg.CookieDomain,
		Expires:  time.Now().Add(h.cfg.JWTRefreshExpiry),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func (h *AuthHandler) clearAuthCookies(c *fiber.Ctx) {
	for _, name := range []string{accessCookie, refreshCookie} {
		c.Cookie(&fiber.Cookie{
			Name:     name,
			Value:    "",
			Domain:   h.cfg.CookieDomain,
			Expires:  time.Now().Add(-time.Hour),
			HTTPOnly: true,
			Secure:   h.cfg.CookieSecure,
			SameSite: fiber.CookieSameSiteStrictMode,
		})
	}
}
